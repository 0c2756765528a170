package quiz

import (
	"math/rand"
	"time"

	"quizdeck/backend/models"
)

// Shuffle returns the questions in a uniformly random order, reseeded for
// every quiz start so two learners never see the same permutation by
// default.
func Shuffle(questions []models.Question) []models.Question {
	shuffled := make([]models.Question, len(questions))
	copy(shuffled, questions)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}
