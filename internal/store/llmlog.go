package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestRecord captures one call to an LLM collaborator.
type LLMRequestRecord struct {
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMLogRepo is the append-only log of LLM requests, fed by the
// provider logging middleware.
type LLMLogRepo interface {
	Append(ctx context.Context, rec LLMRequestRecord) error

	// Recent returns the newest records first, up to limit.
	Recent(ctx context.Context, limit int) ([]LLMRequestRecord, error)
}

type llmLogRepo struct {
	db *sql.DB
}

func (r *llmLogRepo) Append(ctx context.Context, rec LLMRequestRecord) error {
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests
		 (timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ts, rec.Provider, rec.Model, rec.Purpose,
		rec.InputTokens, rec.OutputTokens, rec.LatencyMs, rec.Success, rec.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

func (r *llmLogRepo) Recent(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message
		 FROM llm_requests ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestRecord
	for rows.Next() {
		var rec LLMRequestRecord
		if err := rows.Scan(&rec.Timestamp, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &rec.Success, &rec.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm request: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
