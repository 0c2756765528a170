package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quizdeck/backend/models"
)

func question(id uint, correct string) models.Question {
	q := models.Question{
		Text:          "Question",
		OptionA:       "Answer A",
		OptionB:       "Answer B",
		OptionC:       "Answer C",
		OptionD:       "Answer D",
		CorrectOption: correct,
	}
	q.ID = id
	return q
}

func TestScorePartialCredit(t *testing.T) {
	questions := []models.Question{question(1, "A"), question(2, "B")}
	answers := map[uint]string{1: "A", 2: "C"}

	score, total, results := Score(questions, answers)

	assert.Equal(t, 1, score)
	assert.Equal(t, 2, total)
	assert.Equal(t, 50.0, Percentage(score, total))

	assert.True(t, results[0].IsCorrect)
	assert.Equal(t, "Answer A", results[0].SelectedOption)
	assert.False(t, results[1].IsCorrect)
	assert.Equal(t, "Answer C", results[1].SelectedOption)
	assert.Equal(t, "Answer B", results[1].CorrectOption)
}

func TestScoreEmptyQuiz(t *testing.T) {
	score, total, results := Score(nil, map[uint]string{})

	assert.Equal(t, 0, score)
	assert.Equal(t, 0, total)
	assert.Empty(t, results)
	assert.Equal(t, 0.0, Percentage(score, total))
}

func TestScoreMissingAnswerIsIncorrect(t *testing.T) {
	questions := []models.Question{question(1, "A"), question(2, "B")}

	score, total, results := Score(questions, map[uint]string{2: "B"})

	assert.Equal(t, 1, score)
	assert.Equal(t, 2, total)
	assert.False(t, results[0].IsCorrect)
	assert.Equal(t, NotAnswered, results[0].SelectedOption)
}

func TestScoreInvalidLetterIsNotAnswered(t *testing.T) {
	questions := []models.Question{question(1, "A")}

	score, _, results := Score(questions, map[uint]string{1: "E"})

	assert.Equal(t, 0, score)
	assert.Equal(t, NotAnswered, results[0].SelectedOption)
	assert.False(t, results[0].IsCorrect)
}

func TestScoreNormalizesSubmittedLetters(t *testing.T) {
	questions := []models.Question{question(1, "A")}

	score, _, results := Score(questions, map[uint]string{1: " a "})

	assert.Equal(t, 1, score)
	assert.True(t, results[0].IsCorrect)
}

func TestScoreIgnoresAnswersForUnknownQuestions(t *testing.T) {
	questions := []models.Question{question(1, "A")}

	score, total, _ := Score(questions, map[uint]string{1: "A", 99: "B"})

	assert.Equal(t, 1, score)
	assert.Equal(t, 1, total)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		score int
		total int
		want  float64
	}{
		{"perfect", 7, 7, 100.0},
		{"half", 1, 2, 50.0},
		{"third rounds half up", 1, 3, 33.3},
		{"two thirds", 2, 3, 66.7},
		{"one of seven", 1, 7, 14.3},
		{"zero total", 0, 0, 0.0},
		{"zero score", 0, 5, 0.0},
		{"one eighth", 1, 8, 12.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.score, tt.total))
		})
	}
}

func TestShuffleKeepsAllQuestions(t *testing.T) {
	questions := make([]models.Question, 20)
	for i := range questions {
		questions[i] = question(uint(i+1), "A")
	}

	shuffled := Shuffle(questions)

	assert.Len(t, shuffled, len(questions))
	seen := make(map[uint]bool, len(shuffled))
	for _, q := range shuffled {
		seen[q.ID] = true
	}
	assert.Len(t, seen, len(questions))

	// input order untouched
	for i, q := range questions {
		assert.Equal(t, uint(i+1), q.ID)
	}
}
