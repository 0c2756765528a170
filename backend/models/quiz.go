package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name      string        `gorm:"unique;not null"`
	Questions []Question    `gorm:"constraint:OnDelete:CASCADE"`
	Attempts  []QuizAttempt `gorm:"constraint:OnDelete:CASCADE"`
}

type Question struct {
	gorm.Model
	CategoryID    uint   `gorm:"not null;index"`
	Text          string `gorm:"not null"`
	OptionA       string
	OptionB       string
	OptionC       string
	OptionD       string
	CorrectOption string `gorm:"size:1"` // A, B, C or D
}

// OptionText resolves an option letter to its text; empty string when the
// letter is not one of A-D.
func (q *Question) OptionText(letter string) string {
	switch letter {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

// QuizAttempt is written once at submission time. Only the flag bit may be
// changed afterwards, through an explicit admin override.
type QuizAttempt struct {
	gorm.Model
	UserID          uint `gorm:"not null;index"`
	User            User
	CategoryID      uint `gorm:"not null;index"`
	Category        Category
	Score           int `gorm:"not null"`
	Total           int `gorm:"not null"`
	TabSwitches     int `gorm:"default:0"`
	FullscreenExits int `gorm:"default:0"`
	IsFlagged       bool `gorm:"default:false"`
}
