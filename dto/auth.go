package dto

// ==================== AUTHENTICATION REQUEST DTOs ====================

type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"detective@deepfind.io"`
	Password string `json:"password" validate:"required" example:"password123"`
}

func (l LoginRequest) Validate() error {
	return GetValidator().Struct(l)
}

type SignupRequest struct {
	Email       string `json:"email" validate:"required,email" example:"detective@deepfind.io"`
	Password    string `json:"password" validate:"required,min=6" example:"password123"`
	Nickname    string `json:"nickname" validate:"required,min=1,max=30" example:"꼬마 탐정"`
	AvatarEmoji string `json:"avatarEmoji" validate:"required" example:"🦊"`
}

func (s SignupRequest) Validate() error {
	return GetValidator().Struct(s)
}

// ==================== AUTHENTICATION RESPONSE DTOs ====================

type AuthResponse struct {
	Token string              `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  UserProfileResponse `json:"user"`
}
