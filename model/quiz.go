// model/quiz.go
package model

import (
	"encoding/json"
	"time"
)

// Question is one entry of the quiz catalog. Immutable once issued; Options
// is a JSON-encoded ordered list of answer strings.
type Question struct {
	ID             string          `json:"id" gorm:"primaryKey"`
	VideoURL       string          `json:"video_url"`
	ThumbnailEmoji string          `json:"thumbnail_emoji"`
	Options        json.RawMessage `json:"options" gorm:"type:text;not null"`
	CorrectIndex   int             `json:"correct_index" gorm:"not null"`
	Explanation    string          `json:"explanation" gorm:"type:text"`
	Difficulty     string          `json:"difficulty"` // easy, medium, hard
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type QuizStat struct {
	UserID        string    `json:"user_id" gorm:"primaryKey"`
	TotalAnswered int       `json:"total_answered" gorm:"not null"`
	CorrectCount  int       `json:"correct_count" gorm:"not null"`
	CurrentStreak int       `json:"current_streak" gorm:"not null"`
	BestStreak    int       `json:"best_streak" gorm:"not null"`
	Lives         int       `json:"lives" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type QuizAnswer struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"not null;index"`
	QuestionID    string    `json:"question_id" gorm:"not null"`
	SelectedIndex int       `json:"selected_index" gorm:"not null"`
	IsCorrect     bool      `json:"is_correct" gorm:"not null"`
	XPEarned      int       `json:"xp_earned" gorm:"not null"`
	CoinsEarned   int       `json:"coins_earned" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}
