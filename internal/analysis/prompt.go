package analysis

import (
	"bytes"
	"text/template"

	"github.com/arjunv/cognify/internal/assessment"
)

const systemPrompt = `You are analyzing the results of a timed terminal-based cognitive assessment. The learner answered questions across up to five categories (memory, attention, reasoning, spatial, verbal) with 5 seconds per question.

Instructions:
- Summarize overall performance in two or three encouraging sentences.
- List genuine strengths and weaknesses grounded in the per-category numbers. Do not invent patterns the data does not show.
- Give concrete, specific practice recommendations.
- For each incorrect response, write a one-sentence note. Copy the context field exactly as given; it is the key the application matches on.
- Mention slow correct answers or timed-out questions where relevant.`

var userTemplate = template.Must(template.New("analysis").Parse(`Overall score: {{.Score}}% ({{.Correct}}/{{.Total}} correct)

Per category:
{{range .Categories}}- {{.Name}}: {{.Correct}}/{{.Total}}
{{end}}
Responses, in order:
{{range .Responses}}- [{{.Category}}] context: {{.Context}}
  answered: {{.Selected}} | correct: {{.CorrectAnswer}} | {{.TimeTakenMs}}ms{{if .TimedOut}} | after timeout{{end}} | {{if .IsCorrect}}right{{else}}wrong{{end}}
{{end}}`))

type promptData struct {
	Score      int
	Correct    int
	Total      int
	Categories []categoryLine
	Responses  []assessment.Response
}

type categoryLine struct {
	Name    string
	Correct int
	Total   int
}

func buildUserMessage(responses []assessment.Response) (string, error) {
	data := promptData{
		Total:     len(responses),
		Responses: responses,
	}
	for _, r := range responses {
		if r.IsCorrect {
			data.Correct++
		}
	}
	if data.Total > 0 {
		data.Score = roundPercent(data.Correct, data.Total)
	}

	for _, cat := range orderedCategories(responses) {
		line := categoryLine{Name: cat.DisplayName()}
		for _, r := range responses {
			if r.Category != cat {
				continue
			}
			line.Total++
			if r.IsCorrect {
				line.Correct++
			}
		}
		data.Categories = append(data.Categories, line)
	}

	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// orderedCategories returns the categories present in the responses, in
// the fixed full-run order.
func orderedCategories(responses []assessment.Response) []assessment.Category {
	seen := make(map[assessment.Category]bool, len(responses))
	for _, r := range responses {
		seen[r.Category] = true
	}
	var out []assessment.Category
	for _, cat := range assessment.FullOrder {
		if seen[cat] {
			out = append(out, cat)
		}
	}
	return out
}

func roundPercent(correct, total int) int {
	return int(float64(correct)/float64(total)*100 + 0.5)
}
