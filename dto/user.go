package dto

import "time"

type UserProfileResponse struct {
	ID               string    `json:"id" example:"usr_fox_001"`
	Email            string    `json:"email" example:"detective@deepfind.io"`
	Nickname         string    `json:"nickname" example:"날쌘 여우 탐정"`
	AvatarEmoji      string    `json:"avatarEmoji" example:"🦊"`
	SubscriptionType string    `json:"subscriptionType" example:"free"`
	Coins            int       `json:"coins" example:"1200"`
	Level            int       `json:"level" example:"5"`
	LevelTitle       string    `json:"levelTitle" example:"전문가"`
	XP               int       `json:"xp" example:"3400"`
	CreatedAt        time.Time `json:"createdAt"`
}

// UpdateProfileRequest is a partial update: zero-value fields are left alone,
// set fields are merged into the stored profile and re-persisted.
type UpdateProfileRequest struct {
	Nickname    string `json:"nickname,omitempty" validate:"omitempty,min=1,max=30" example:"수리 부엉이"`
	AvatarEmoji string `json:"avatarEmoji,omitempty" example:"🦉"`
}

func (u UpdateProfileRequest) Validate() error {
	return GetValidator().Struct(u)
}
