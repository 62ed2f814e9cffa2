// model/user.go
package model

import "time"

type User struct {
	ID               string `json:"id" gorm:"primaryKey"`
	Email            string `json:"email" gorm:"unique;not null"`
	PasswordHash     string `json:"-"`
	Nickname         string `json:"nickname" gorm:"not null"`
	AvatarEmoji      string `json:"avatar_emoji"`
	SubscriptionType string `json:"subscription_type" gorm:"default:free"` // free, premium
	Coins            int    `json:"coins" gorm:"not null"`
	Level            int    `json:"level" gorm:"not null"`
	LevelTitle       string `json:"level_title"`
	XP               int    `json:"xp" gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
