package services

import (
	"testing"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

func newUserService(t *testing.T) (*UserService, *SqliteService, string) {
	t.Helper()

	ds := newTestDB(t)
	jwtSvc := newTestJWT()
	svc := &UserService{
		jwtSvc:     jwtSvc,
		sqlSvc:     ds,
		latencySvc: newTestLatency(),
	}

	user := seedTestUser(t, ds)
	token := mintToken(t, jwtSvc, user)
	return svc, ds, token
}

func TestGetProfileRequiresToken(t *testing.T) {
	svc, _, _ := newUserService(t)

	if _, err := svc.GetProfile(""); !shared.IsErrorType(err, shared.ErrTypeUnauthenticated) {
		t.Fatalf("expected UNAUTHENTICATED, got %v", err)
	}
	if _, err := svc.GetProfile("garbage"); !shared.IsErrorType(err, shared.ErrTypeUnauthenticated) {
		t.Fatalf("expected UNAUTHENTICATED for malformed token, got %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	svc, _, token := newUserService(t)

	profile, err := svc.GetProfile(token)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if profile.ID != "usr_test_001" || profile.Nickname != "날쌘 여우 탐정" {
		t.Fatalf("profile = %+v", profile)
	}
	if profile.Level != 5 || profile.XP != 3400 {
		t.Fatalf("stats = level %d, xp %d", profile.Level, profile.XP)
	}
}

func TestUpdateProfileMergesPartially(t *testing.T) {
	svc, ds, token := newUserService(t)

	updated, err := svc.UpdateProfile(token, dto.UpdateProfileRequest{Nickname: "수리 부엉이"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Nickname != "수리 부엉이" {
		t.Fatalf("nickname = %q", updated.Nickname)
	}
	// Unset fields stay put.
	if updated.AvatarEmoji != "🦊" {
		t.Fatalf("avatar = %q, want untouched 🦊", updated.AvatarEmoji)
	}

	stored, err := ds.GetUser("usr_test_001")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if stored.Nickname != "수리 부엉이" {
		t.Fatal("update must persist")
	}
}
