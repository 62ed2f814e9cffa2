// model/payment.go
package model

import (
	"encoding/json"
	"time"
)

// Plan is a subscription catalog entry. DurationDays drives the checkout
// expiry so unknown plan ids never fall back to an implicit duration.
type Plan struct {
	ID           string          `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"not null"`
	Price        int             `json:"price" gorm:"not null"`
	Currency     string          `json:"currency" gorm:"not null"`
	Features     json.RawMessage `json:"features" gorm:"type:text"`
	DurationDays int             `json:"duration_days" gorm:"not null"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type Transaction struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	PlanID    string    `json:"plan_id" gorm:"not null"`
	Amount    int       `json:"amount" gorm:"not null"`
	Currency  string    `json:"currency" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
