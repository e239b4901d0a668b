package analysis

import (
	"fmt"
	"sort"

	"github.com/arjunv/cognify/internal/assessment"
)

// Placeholder computes a deterministic local result from the ledger.
// Used when no LLM is available or the analysis call failed.
func Placeholder(responses []assessment.Response) *Result {
	scores := categoryScores(responses)

	correct := 0
	for _, r := range responses {
		if r.IsCorrect {
			correct++
		}
	}

	result := &Result{
		CategoryScores: scores,
		Explanations:   map[string]string{},
		Fallback:       true,
	}

	if len(responses) == 0 {
		result.Summary = "No responses recorded."
		return result
	}

	score := roundPercent(correct, len(responses))
	result.Summary = fmt.Sprintf(
		"You answered %d of %d questions correctly (%d%%). Detailed analysis was unavailable for this run.",
		correct, len(responses), score,
	)

	for _, cat := range sortedByScore(scores, true) {
		if scores[cat] >= 80 {
			result.Strengths = append(result.Strengths,
				fmt.Sprintf("%s: %d%%", cat.DisplayName(), scores[cat]))
		}
	}
	for _, cat := range sortedByScore(scores, false) {
		if scores[cat] < 60 {
			result.Weaknesses = append(result.Weaknesses,
				fmt.Sprintf("%s: %d%%", cat.DisplayName(), scores[cat]))
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Practice the %s section.", cat.DisplayName()))
		}
	}

	return result
}

// sortedByScore orders categories by score, descending when desc is
// true. Ties break on the fixed full-run order so output is stable.
func sortedByScore(scores map[assessment.Category]int, desc bool) []assessment.Category {
	var cats []assessment.Category
	for _, cat := range assessment.FullOrder {
		if _, ok := scores[cat]; ok {
			cats = append(cats, cat)
		}
	}
	sort.SliceStable(cats, func(i, j int) bool {
		if desc {
			return scores[cats[i]] > scores[cats[j]]
		}
		return scores[cats[i]] < scores[cats[j]]
	})
	return cats
}
