package sectiongen

import (
	"fmt"
	"strings"

	"github.com/arjunv/cognify/internal/assessment"
)

const systemPrompt = `You are generating questions for a timed terminal-based cognitive assessment.

Rules:
- Generate exactly the requested number of questions, all for the single requested category.
- Use plain ASCII text only. The questions render in a terminal; no markdown, no Unicode art beyond simple symbols.
- Each question must be answerable in a few seconds; the test gives 5 seconds per question.
- The correct_answer must be exact: for option questions it is the full text of the correct option, for memory questions it is the pair count as a number string.
- Do not repeat content between questions in the batch.`

var categoryInstructions = map[assessment.Category]string{
	assessment.CategoryMemory: `Category: memory.
Each question shows a row of 6-10 single-character symbols (e.g. "@ # @ $ % $").
Some symbols appear exactly twice; the learner counts the identical pairs.
correct_answer is the pair count, e.g. "2".`,

	assessment.CategoryAttention: `Category: attention.
Each question is a sequence of 5-8 short items where exactly one breaks the pattern
(e.g. "3 6 9 11 12 15" or "cat dog cow car hen").
correct_answer is the outlier item itself, exactly as it appears in the sequence.`,

	assessment.CategoryReasoning: `Category: reasoning.
Each question has a short premise (statement), then a question about it, with 4 options.
Example: statement "All bloops are razzies. All razzies are lazzies.",
question "Are all bloops definitely lazzies?", options including "Yes".
correct_answer is the text of the correct option.`,

	assessment.CategorySpatial: `Category: spatial.
Each question names a target figure made of ASCII characters (e.g. "b", "<<--") and a
transform ("mirror" or "rotation"), with 4 candidate options.
correct_answer is the text of the correct option.`,

	assessment.CategoryVerbal: `Category: verbal.
Each question is a word-relation prompt, e.g. "Finger is to hand as leaf is to ?"
or "Which word does not belong: apple, banana, carrot, plum?", with 4 options.
correct_answer is the text of the correct option.`,
}

func buildUserMessage(category assessment.Category, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d questions.\n\n", count)
	b.WriteString(categoryInstructions[category])
	return b.String()
}
