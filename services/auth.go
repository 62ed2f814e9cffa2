package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	appContext "github.com/alphabatem/common/context"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/shared"
)

// AuthService is the simulated authentication backend. Mock contract: any
// non-empty credential pair logs in; only empty email or password is rejected.
type AuthService struct {
	appContext.DefaultService

	jwtSvc     *JWTService
	sqlSvc     *SqliteService
	latencySvc *LatencyService
	redisSvc   *RedisService
}

const AUTH_SVC = "auth_svc"

const sessionKeyPrefix = "session:"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.latencySvc = svc.Service(LATENCY_SVC).(*LatencyService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, shared.ErrInvalidCredentials()
	}

	svc.latencySvc.DelayMs(600, 1000)

	user, err := svc.sqlSvc.GetUserByEmail(req.Email)
	if err != nil {
		if !shared.IsErrorType(err, shared.ErrTypeNotFound) {
			return nil, err
		}
		// First login for this address: bind the demo detective profile to it.
		user, err = svc.createBaselineUser(req.Email)
		if err != nil {
			return nil, err
		}
	}

	token, err := svc.jwtSvc.ToJWT(user)
	if err != nil {
		return nil, shared.ErrOperationFailed(err.Error())
	}

	svc.registerSession(token, user.ID)

	profile := profileResponse(user)
	return &dto.AuthResponse{Token: token, User: profile}, nil
}

func (svc *AuthService) Signup(req dto.SignupRequest) (*dto.AuthResponse, error) {
	svc.latencySvc.DelayMs(800, 1200)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.ErrOperationFailed(err.Error())
	}

	id, _ := uuid.NewV7()
	user := &model.User{
		ID:               id.String(),
		Email:            req.Email,
		PasswordHash:     string(hash),
		Nickname:         req.Nickname,
		AvatarEmoji:      req.AvatarEmoji,
		SubscriptionType: shared.SubscriptionFree,
		Coins:            100,
		Level:            1,
		LevelTitle:       "새싹 탐정",
		XP:               0,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if _, err := svc.sqlSvc.CreateUser(user); err != nil {
		return nil, err
	}

	token, err := svc.jwtSvc.ToJWT(user)
	if err != nil {
		return nil, shared.ErrOperationFailed(err.Error())
	}

	svc.registerSession(token, user.ID)

	profile := profileResponse(user)
	return &dto.AuthResponse{Token: token, User: profile}, nil
}

func (svc *AuthService) Logout(token string) error {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return err
	}

	claims, err := svc.jwtSvc.VerifyJWTToken(token)
	if err != nil {
		return shared.ErrUnauthenticated("Invalid JWT token")
	}

	if svc.redisSvc != nil {
		ctx := context.Background()
		if err := svc.redisSvc.Delete(ctx, sessionKeyPrefix+claims.ID); err != nil {
			log.WithError(err).Warn("Failed to revoke session")
		}
	}

	return nil
}

func (svc *AuthService) createBaselineUser(email string) (*model.User, error) {
	user := &model.User{
		ID:               "usr_" + uuid.New().String()[:8],
		Email:            email,
		Nickname:         "날쌘 여우 탐정",
		AvatarEmoji:      "🦊",
		SubscriptionType: shared.SubscriptionFree,
		Coins:            1200,
		Level:            5,
		LevelTitle:       "전문가",
		XP:               3400,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	return svc.sqlSvc.CreateUser(user)
}

// registerSession records the token's jti so logout can revoke it. Best
// effort: a cold cache never blocks a login.
func (svc *AuthService) registerSession(token, userID string) {
	if svc.redisSvc == nil {
		return
	}

	claims, err := svc.jwtSvc.VerifyJWTToken(token)
	if err != nil {
		return
	}

	ctx := context.Background()
	if err := svc.redisSvc.Set(ctx, sessionKeyPrefix+claims.ID, userID, svc.jwtSvc.AccessTokenDuration); err != nil {
		log.WithError(err).WithField(shared.UserID, userID).Warn("Failed to register session")
	}
}
