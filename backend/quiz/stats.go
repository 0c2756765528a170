package quiz

import (
	"math"

	"quizdeck/backend/models"
)

const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// trendWindow attempts are compared against the preceding trendWindow; the
// trend is only computed once 2*trendWindow attempts exist.
const trendWindow = 5

type SubjectPerformance struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Average      float64 `json:"average"`
	Attempts     int     `json:"attempts"`
}

type Stats struct {
	TotalAttempts      int                  `json:"total_attempts"`
	AverageScore       float64              `json:"average_score"`
	HighestScore       float64              `json:"highest_score"`
	BestCategory       string               `json:"best_category"`
	SubjectPerformance []SubjectPerformance `json:"subject_performance"`
	ImprovementTrend   string               `json:"improvement_trend"`
}

// AggregateStats summarises one user's attempts, which must be ordered most
// recent first. Averages are means of per-attempt percentages, so attempts
// with differing totals weigh equally.
func AggregateStats(attempts []models.QuizAttempt, categories []models.Category) Stats {
	stats := Stats{
		TotalAttempts:      len(attempts),
		SubjectPerformance: []SubjectPerformance{},
		ImprovementTrend:   TrendStable,
	}
	if len(attempts) == 0 {
		return stats
	}

	categoryNames := make(map[uint]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	var sum float64
	bySubject := make(map[uint][]float64)
	bestIdx := 0
	best := -1.0

	for i := range attempts {
		pct := Percentage(attempts[i].Score, attempts[i].Total)
		sum += pct
		bySubject[attempts[i].CategoryID] = append(bySubject[attempts[i].CategoryID], pct)
		// ties keep the earliest-encountered attempt
		if pct > best {
			best = pct
			bestIdx = i
		}
	}

	stats.AverageScore = round1(sum / float64(len(attempts)))
	stats.HighestScore = best
	stats.BestCategory = categoryNames[attempts[bestIdx].CategoryID]

	for _, c := range categories {
		pcts, ok := bySubject[c.ID]
		if !ok {
			continue
		}
		stats.SubjectPerformance = append(stats.SubjectPerformance, SubjectPerformance{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			Average:      round1(mean(pcts)),
			Attempts:     len(pcts),
		})
	}

	stats.ImprovementTrend = improvementTrend(attempts)
	return stats
}

// improvementTrend compares the mean percentage of the 5 most recent
// attempts against the 5 before them. Differences within 5 percentage
// points either way count as stable.
func improvementTrend(attempts []models.QuizAttempt) string {
	if len(attempts) < 2*trendWindow {
		return TrendStable
	}

	recent := meanPercentage(attempts[:trendWindow])
	prior := meanPercentage(attempts[trendWindow : 2*trendWindow])

	switch diff := recent - prior; {
	case diff > 5:
		return TrendImproving
	case diff < -5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func meanPercentage(attempts []models.QuizAttempt) float64 {
	var sum float64
	for i := range attempts {
		sum += Percentage(attempts[i].Score, attempts[i].Total)
	}
	return sum / float64(len(attempts))
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
