package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"quizdeck/backend/models"
)

func category(id uint, name string) models.Category {
	c := models.Category{Name: name}
	c.ID = id
	return c
}

// attempt builds an attempt; newer attempts get later timestamps via offset.
func attempt(score, total int, categoryID uint, offset int) models.QuizAttempt {
	a := models.QuizAttempt{
		UserID:     1,
		CategoryID: categoryID,
		Score:      score,
		Total:      total,
	}
	a.ID = uint(offset + 1)
	a.CreatedAt = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC).Add(-time.Duration(offset) * time.Hour)
	return a
}

func TestAggregateStatsEmpty(t *testing.T) {
	stats := AggregateStats(nil, []models.Category{category(1, "Math")})

	assert.Equal(t, 0, stats.TotalAttempts)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.Equal(t, TrendStable, stats.ImprovementTrend)
	assert.Empty(t, stats.SubjectPerformance)
}

func TestAggregateStatsAverages(t *testing.T) {
	categories := []models.Category{category(1, "Math"), category(2, "History")}
	attempts := []models.QuizAttempt{
		attempt(9, 10, 1, 0), // 90%
		attempt(3, 6, 2, 1),  // 50%
		attempt(7, 10, 1, 2), // 70%
	}

	stats := AggregateStats(attempts, categories)

	assert.Equal(t, 3, stats.TotalAttempts)
	assert.Equal(t, 70.0, stats.AverageScore)
	assert.Equal(t, 90.0, stats.HighestScore)
	assert.Equal(t, "Math", stats.BestCategory)

	assert.Len(t, stats.SubjectPerformance, 2)
	assert.Equal(t, "Math", stats.SubjectPerformance[0].CategoryName)
	assert.Equal(t, 80.0, stats.SubjectPerformance[0].Average)
	assert.Equal(t, 2, stats.SubjectPerformance[0].Attempts)
	assert.Equal(t, "History", stats.SubjectPerformance[1].CategoryName)
	assert.Equal(t, 50.0, stats.SubjectPerformance[1].Average)
	assert.Equal(t, 1, stats.SubjectPerformance[1].Attempts)
}

// Averaging weighs attempts equally even when their totals differ, instead
// of dividing a mean raw score by one attempt's total.
func TestAggregateStatsMixedTotals(t *testing.T) {
	categories := []models.Category{category(1, "Math")}
	attempts := []models.QuizAttempt{
		attempt(1, 2, 1, 0),  // 50%
		attempt(10, 10, 1, 1), // 100%
	}

	stats := AggregateStats(attempts, categories)
	assert.Equal(t, 75.0, stats.AverageScore)
}

func TestAggregateStatsHighestTieKeepsEarliest(t *testing.T) {
	categories := []models.Category{category(1, "Math"), category(2, "History")}
	attempts := []models.QuizAttempt{
		attempt(8, 10, 2, 0), // 80%, encountered first
		attempt(4, 5, 1, 1),  // 80%
	}

	stats := AggregateStats(attempts, categories)
	assert.Equal(t, 80.0, stats.HighestScore)
	assert.Equal(t, "History", stats.BestCategory)
}

func TestAggregateStatsZeroTotalAttempt(t *testing.T) {
	categories := []models.Category{category(1, "Math")}
	attempts := []models.QuizAttempt{
		attempt(0, 0, 1, 0), // contributes 0, never divides by zero
		attempt(5, 10, 1, 1),
	}

	stats := AggregateStats(attempts, categories)
	assert.Equal(t, 25.0, stats.AverageScore)
}

func TestImprovementTrendImproving(t *testing.T) {
	categories := []models.Category{category(1, "Math")}
	var attempts []models.QuizAttempt
	for i := 0; i < 5; i++ {
		attempts = append(attempts, attempt(9, 10, 1, i)) // recent five at 90%
	}
	for i := 5; i < 12; i++ {
		attempts = append(attempts, attempt(6, 10, 1, i)) // older at 60%
	}

	stats := AggregateStats(attempts, categories)
	assert.Equal(t, TrendImproving, stats.ImprovementTrend)
}

func TestImprovementTrendDeclining(t *testing.T) {
	categories := []models.Category{category(1, "Math")}
	var attempts []models.QuizAttempt
	for i := 0; i < 5; i++ {
		attempts = append(attempts, attempt(5, 10, 1, i))
	}
	for i := 5; i < 10; i++ {
		attempts = append(attempts, attempt(9, 10, 1, i))
	}

	stats := AggregateStats(attempts, categories)
	assert.Equal(t, TrendDeclining, stats.ImprovementTrend)
}

func TestImprovementTrendWithinFivePointsIsStable(t *testing.T) {
	categories := []models.Category{category(1, "Math")}
	var attempts []models.QuizAttempt
	for i := 0; i < 5; i++ {
		attempts = append(attempts, attempt(65, 100, 1, i))
	}
	for i := 5; i < 10; i++ {
		attempts = append(attempts, attempt(60, 100, 1, i))
	}

	// exactly +5 points is not an improvement
	stats := AggregateStats(attempts, categories)
	assert.Equal(t, TrendStable, stats.ImprovementTrend)
}

func TestImprovementTrendNeedsTenAttempts(t *testing.T) {
	categories := []models.Category{category(1, "Math")}
	var attempts []models.QuizAttempt
	for i := 0; i < 9; i++ {
		attempts = append(attempts, attempt(i, 10, 1, i))
	}

	stats := AggregateStats(attempts, categories)
	assert.Equal(t, TrendStable, stats.ImprovementTrend)
}
