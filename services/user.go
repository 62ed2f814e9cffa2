// services/user.go
package services

import (
	"time"

	"github.com/alphabatem/common/context"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/shared"
)

type UserService struct {
	context.DefaultService

	jwtSvc     *JWTService
	sqlSvc     *SqliteService
	latencySvc *LatencyService
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.latencySvc = svc.Service(LATENCY_SVC).(*LatencyService)
	return nil
}

func (svc *UserService) GetProfile(token string) (*dto.UserProfileResponse, error) {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return nil, err
	}

	svc.latencySvc.DelayMs(300, 600)

	user, err := svc.userFromToken(token)
	if err != nil {
		return nil, err
	}

	profile := profileResponse(user)
	return &profile, nil
}

// UpdateProfile merges the set fields into the stored profile and re-persists
// it. Zero-value fields are left untouched.
func (svc *UserService) UpdateProfile(token string, req dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return nil, err
	}

	svc.latencySvc.DelayMs(300, 600)

	user, err := svc.userFromToken(token)
	if err != nil {
		return nil, err
	}

	if req.Nickname != "" {
		user.Nickname = req.Nickname
	}
	if req.AvatarEmoji != "" {
		user.AvatarEmoji = req.AvatarEmoji
	}
	user.UpdatedAt = time.Now()

	if err := svc.sqlSvc.UpdateUser(user); err != nil {
		return nil, err
	}

	profile := profileResponse(user)
	return &profile, nil
}

func (svc *UserService) userFromToken(token string) (*model.User, error) {
	claims, err := svc.jwtSvc.VerifyJWTToken(token)
	if err != nil {
		return nil, shared.ErrUnauthenticated("Invalid JWT token")
	}

	return svc.sqlSvc.GetUser(claims.UserID)
}

func profileResponse(user *model.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		ID:               user.ID,
		Email:            user.Email,
		Nickname:         user.Nickname,
		AvatarEmoji:      user.AvatarEmoji,
		SubscriptionType: user.SubscriptionType,
		Coins:            user.Coins,
		Level:            user.Level,
		LevelTitle:       user.LevelTitle,
		XP:               user.XP,
		CreatedAt:        user.CreatedAt,
	}
}
