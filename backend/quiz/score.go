// Package quiz holds the attempt scoring and reporting logic. Everything in
// here is pure computation over loaded records; persistence stays in the
// controllers.
package quiz

import (
	"math"
	"strings"

	"quizdeck/backend/models"
)

// NotAnswered is recorded as the selected option when a question was skipped
// or the submitted value is not a valid option letter.
const NotAnswered = "Not answered"

type QuestionResult struct {
	QuestionID     uint   `json:"question_id"`
	QuestionText   string `json:"question_text"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
	IsCorrect      bool   `json:"is_correct"`
}

// Score evaluates submitted answers against the question set. Total counts
// questions presented, not answers received; a missing or malformed answer
// scores as incorrect rather than erroring.
func Score(questions []models.Question, answers map[uint]string) (score, total int, results []QuestionResult) {
	total = len(questions)
	results = make([]QuestionResult, 0, total)

	for i := range questions {
		q := &questions[i]
		letter := NormalizeLetter(answers[q.ID])

		selected := NotAnswered
		if text := q.OptionText(letter); text != "" {
			selected = text
		}

		correct := letter != "" && letter == q.CorrectOption
		if correct {
			score++
		}

		results = append(results, QuestionResult{
			QuestionID:     q.ID,
			QuestionText:   q.Text,
			SelectedOption: selected,
			CorrectOption:  q.OptionText(q.CorrectOption),
			IsCorrect:      correct,
		})
	}

	return score, total, results
}

// NormalizeLetter maps a submitted answer to one of A-D, or "" when it is
// not a valid option letter.
func NormalizeLetter(raw string) string {
	letter := strings.ToUpper(strings.TrimSpace(raw))
	switch letter {
	case "A", "B", "C", "D":
		return letter
	}
	return ""
}

// Percentage returns score/total as 0-100 with one decimal, rounding half
// up. A zero total yields 0 rather than dividing by zero.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(score)/float64(total)*1000) / 10
}
