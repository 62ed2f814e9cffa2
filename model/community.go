// model/community.go
package model

import (
	"encoding/json"
	"time"
)

type Post struct {
	ID             string          `json:"id" gorm:"primaryKey"`
	AuthorNickname string          `json:"author_nickname" gorm:"not null"`
	AuthorEmoji    string          `json:"author_emoji"`
	Title          string          `json:"title" gorm:"not null"`
	Body           string          `json:"body" gorm:"type:text"`
	Likes          int             `json:"likes" gorm:"not null"`
	Comments       int             `json:"comments" gorm:"not null"`
	Tags           json.RawMessage `json:"tags" gorm:"type:text"` // JSON array of tag strings
	UserID         string          `json:"user_id" gorm:"index"`  // empty for seeded catalog posts
	CreatedAt      time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
