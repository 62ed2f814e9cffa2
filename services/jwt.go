package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/alphabatem/common/context"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/shared"
)

type JWTService struct {
	context.DefaultService

	AccessTokenDuration time.Duration
	jwtSecretKey        string
}

// CustomClaims mirrors the payload the original gateway minted: the profile
// fields the UI renders without a round trip, on top of the registered set.
type CustomClaims struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Nickname    string `json:"nickname"`
	AvatarEmoji string `json:"avatarEmoji"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

const JWT_SVC = "jwt_svc"

func (svc JWTService) Id() string {
	return JWT_SVC
}

func (svc *JWTService) Configure(ctx *context.Context) error {
	svc.AccessTokenDuration = 24 * time.Hour
	svc.jwtSecretKey = os.Getenv("JWT_OAUTH_SECRET")
	return svc.DefaultService.Configure(ctx)
}

func (svc *JWTService) Start() error {
	return nil
}

// WithAuth is the bearer-token gate every simulated service call passes
// through first. It only checks presence - the token is opaque here - and
// derives the request metadata with a fresh request id. Fails closed before
// any latency is incurred.
func (svc *JWTService) WithAuth(token string) (*dto.RequestMeta, error) {
	if token == "" {
		return nil, shared.ErrUnauthenticated("No token provided")
	}

	return &dto.RequestMeta{
		Authorization: "Bearer " + token,
		RequestID:     uuid.New().String(),
	}, nil
}

func (svc *JWTService) VerifyJWTToken(jwtToken string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(jwtToken, &CustomClaims{}, svc.getJWTKey)
	if err == nil && token.Valid {
		claims, ok := token.Claims.(*CustomClaims)
		if ok && claims != nil {
			expTime, err := claims.GetExpirationTime()
			if err != nil {
				return nil, fmt.Errorf("failed to get expiration time: %v", err)
			}
			now := jwt.NewNumericDate(time.Now())
			if expTime.Unix() < now.Unix() {
				return nil, errors.New("token has expired")
			}

			return claims, nil
		}
	}

	return nil, errors.New("unsupported JWT format")
}

func (svc *JWTService) getJWTKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}

	return []byte(svc.jwtSecretKey), nil
}

func (svc *JWTService) GenerateTokenPair(user *model.User) (*dto.TokenPair, error) {
	accessToken, err := svc.ToJWT(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken: accessToken,
		ExpiresIn:   int64(svc.AccessTokenDuration.Seconds()),
	}, nil
}

func (svc *JWTService) ToJWT(user *model.User) (string, error) {
	expTime := time.Now().Add(svc.AccessTokenDuration)

	claims := &CustomClaims{
		UserID:      user.ID,
		Email:       user.Email,
		Nickname:    user.Nickname,
		AvatarEmoji: user.AvatarEmoji,
		Role:        user.SubscriptionType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "DeepFind",
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(svc.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}

	return tokenString, nil
}

func (svc *JWTService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return "", errors.New("invalid authorization header format")
	}

	return authHeader[7:], nil
}
