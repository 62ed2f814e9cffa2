package services

import (
	"testing"
	"time"

	"github.com/pawfiler/deepfind_api/model"
)

func newTestDB(t *testing.T) *SqliteService {
	t.Helper()

	ds := &SqliteService{database: ":memory:"}
	if err := ds.open(); err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return ds
}

func newTestJWT() *JWTService {
	return &JWTService{
		AccessTokenDuration: time.Hour,
		jwtSecretKey:        "test-secret",
	}
}

// zero scale, so no delays in tests
func newTestLatency() *LatencyService {
	return &LatencyService{}
}

func seedTestUser(t *testing.T, ds *SqliteService) *model.User {
	t.Helper()

	user := &model.User{
		ID:               "usr_test_001",
		Email:            "detective@deepfind.io",
		Nickname:         "날쌘 여우 탐정",
		AvatarEmoji:      "🦊",
		SubscriptionType: "free",
		Coins:            1200,
		Level:            5,
		LevelTitle:       "전문가",
		XP:               3400,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if _, err := ds.CreateUser(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func mintToken(t *testing.T, jwtSvc *JWTService, user *model.User) string {
	t.Helper()

	token, err := jwtSvc.ToJWT(user)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}
