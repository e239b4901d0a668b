package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arjunv/cognify/internal/assessment"
)

// HistoryRepo is the append-only log of completed assessment runs.
// Records are never mutated; Clear exists only for the explicit reset
// command.
type HistoryRepo interface {
	// Append stores one completed run.
	Append(ctx context.Context, rec assessment.AssessmentRecord) error

	// List returns records newest first, up to limit (0 = all).
	List(ctx context.Context, limit int) ([]assessment.AssessmentRecord, error)

	// Latest returns the most recent record, or nil if none exist.
	Latest(ctx context.Context) (*assessment.AssessmentRecord, error)

	// Clear deletes all records.
	Clear(ctx context.Context) error
}

type historyRepo struct {
	db *sql.DB
}

func (r *historyRepo) Append(ctx context.Context, rec assessment.AssessmentRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assessments (id, date, mode, score, total_questions, analysis_summary)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Date, string(rec.Mode), rec.Score, rec.TotalQuestions, rec.AnalysisSummary,
	)
	if err != nil {
		return fmt.Errorf("append assessment: %w", err)
	}
	return nil
}

func (r *historyRepo) List(ctx context.Context, limit int) ([]assessment.AssessmentRecord, error) {
	query := `SELECT id, date, mode, score, total_questions, analysis_summary
		FROM assessments ORDER BY date DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var out []assessment.AssessmentRecord
	for rows.Next() {
		var rec assessment.AssessmentRecord
		var mode string
		if err := rows.Scan(&rec.ID, &rec.Date, &mode, &rec.Score, &rec.TotalQuestions, &rec.AnalysisSummary); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		rec.Mode = assessment.Mode(mode)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *historyRepo) Latest(ctx context.Context) (*assessment.AssessmentRecord, error) {
	recs, err := r.List(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

func (r *historyRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assessments`); err != nil {
		return fmt.Errorf("clear assessments: %w", err)
	}
	return nil
}
