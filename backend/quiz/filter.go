package quiz

import (
	"sort"
	"strings"
	"time"

	"quizdeck/backend/models"
)

// Criteria describes an admin results query. Zero values impose no
// constraint; supplied fields combine with AND.
type Criteria struct {
	CategoryID uint
	UserID     uint
	Flagged    string // "yes", "no" or empty
	DateFrom   time.Time
	DateTo     time.Time // inclusive of the whole end date
	Search     string
}

// FilterAttempts returns the attempts matching the criteria, newest first.
// Attempts must carry their User preloaded for the search criterion to see
// the owner's identity fields.
func FilterAttempts(attempts []models.QuizAttempt, c Criteria) []models.QuizAttempt {
	filtered := make([]models.QuizAttempt, 0, len(attempts))
	for i := range attempts {
		if matches(&attempts[i], c) {
			filtered = append(filtered, attempts[i])
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered
}

func matches(a *models.QuizAttempt, c Criteria) bool {
	if c.CategoryID != 0 && a.CategoryID != c.CategoryID {
		return false
	}
	if c.UserID != 0 && a.UserID != c.UserID {
		return false
	}
	if c.Flagged == "yes" && !a.IsFlagged {
		return false
	}
	if c.Flagged == "no" && a.IsFlagged {
		return false
	}
	if !c.DateFrom.IsZero() && a.CreatedAt.Before(c.DateFrom) {
		return false
	}
	if !c.DateTo.IsZero() && !a.CreatedAt.Before(c.DateTo.AddDate(0, 0, 1)) {
		return false
	}
	if c.Search != "" && !matchesSearch(&a.User, c.Search) {
		return false
	}
	return true
}

// matchesSearch checks the owner's username, first name, last name and
// email for a case-insensitive substring. Any one field matching is enough.
func matchesSearch(u *models.User, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	for _, field := range []string{u.Username, u.FirstName, u.LastName, u.Email} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
