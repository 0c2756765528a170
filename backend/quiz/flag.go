package quiz

import "quizdeck/backend/models"

// Integrity thresholds. An attempt exceeding either counter at submission
// time is flagged for review; the flag never blocks the submission itself.
const (
	MaxTabSwitches     = 3
	MaxFullscreenExits = 2
)

// Security status values derived for reporting. WARNING is intentionally
// looser than the flag thresholds: any nonzero counter earns it.
const (
	StatusFlagged = "FLAGGED"
	StatusWarning = "WARNING"
	StatusClean   = "CLEAN"
)

// IsFlagged applies the integrity policy to the raw counters. Evaluated
// once, when the attempt is created.
func IsFlagged(tabSwitches, fullscreenExits int) bool {
	return tabSwitches > MaxTabSwitches || fullscreenExits > MaxFullscreenExits
}

// SecurityStatus derives the report status for an attempt.
func SecurityStatus(a *models.QuizAttempt) string {
	if a.IsFlagged {
		return StatusFlagged
	}
	if a.TabSwitches > 0 || a.FullscreenExits > 0 {
		return StatusWarning
	}
	return StatusClean
}
