package quiz

import (
	"encoding/csv"
	"io"
	"strconv"

	"quizdeck/backend/models"
)

var exportHeader = []string{
	"Attempt ID",
	"Username",
	"Full Name",
	"Email",
	"Category",
	"Score",
	"Total",
	"Percentage",
	"Timestamp",
	"Flagged",
	"Tab Switches",
	"Fullscreen Exits",
	"Status",
}

// ExportCSV writes the attempts as UTF-8 CSV, header row first. Attempts
// must carry User and Category preloaded.
func ExportCSV(w io.Writer, attempts []models.QuizAttempt) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for i := range attempts {
		a := &attempts[i]
		pct := Percentage(a.Score, a.Total)

		flagged := "No"
		if a.IsFlagged {
			flagged = "Yes"
		}

		row := []string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.User.Username,
			a.User.FullName(),
			a.User.Email,
			a.Category.Name,
			strconv.Itoa(a.Score),
			strconv.Itoa(a.Total),
			strconv.FormatFloat(pct, 'f', 1, 64) + "%",
			a.CreatedAt.Format("2006-01-02 15:04:05"),
			flagged,
			strconv.Itoa(a.TabSwitches),
			strconv.Itoa(a.FullscreenExits),
			SecurityStatus(a),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
