package services

import (
	"strings"
	"testing"
	"time"

	"github.com/pawfiler/deepfind_api/shared"
)

func TestWithAuthRejectsEmptyToken(t *testing.T) {
	jwtSvc := newTestJWT()

	started := time.Now()
	meta, err := jwtSvc.WithAuth("")
	elapsed := time.Since(started)

	if err == nil {
		t.Fatal("expected error for empty token")
	}
	if !shared.IsErrorType(err, shared.ErrTypeUnauthenticated) {
		t.Fatalf("expected UNAUTHENTICATED, got %v", err)
	}
	if meta != nil {
		t.Fatal("expected nil meta on rejection")
	}
	// Fails closed before any simulated latency.
	if elapsed > 50*time.Millisecond {
		t.Fatalf("gate took %v, should be immediate", elapsed)
	}
}

func TestWithAuthDerivesRequestMeta(t *testing.T) {
	jwtSvc := newTestJWT()

	meta, err := jwtSvc.WithAuth("some-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Authorization != "Bearer some-token" {
		t.Fatalf("unexpected authorization: %q", meta.Authorization)
	}
	if meta.RequestID == "" {
		t.Fatal("expected a request id")
	}

	second, _ := jwtSvc.WithAuth("some-token")
	if second.RequestID == meta.RequestID {
		t.Fatal("request ids must be fresh per call")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	ds := newTestDB(t)
	jwtSvc := newTestJWT()
	user := seedTestUser(t, ds)

	token := mintToken(t, jwtSvc, user)

	claims, err := jwtSvc.VerifyJWTToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("user id = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Fatalf("email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Nickname != user.Nickname {
		t.Fatalf("nickname = %q, want %q", claims.Nickname, user.Nickname)
	}
	if claims.Role != user.SubscriptionType {
		t.Fatalf("role = %q, want %q", claims.Role, user.SubscriptionType)
	}
	if claims.ID == "" {
		t.Fatal("expected a jti")
	}
}

func TestVerifyRejectsForgedToken(t *testing.T) {
	ds := newTestDB(t)
	user := seedTestUser(t, ds)

	signer := &JWTService{AccessTokenDuration: time.Hour, jwtSecretKey: "other-secret"}
	token := mintToken(t, signer, user)

	jwtSvc := newTestJWT()
	if _, err := jwtSvc.VerifyJWTToken(token); err == nil {
		t.Fatal("expected verification to fail for a foreign signature")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	jwtSvc := newTestJWT()

	token, err := jwtSvc.ExtractTokenFromHeader("Bearer abc123")
	if err != nil || token != "abc123" {
		t.Fatalf("got (%q, %v), want (abc123, nil)", token, err)
	}

	if _, err := jwtSvc.ExtractTokenFromHeader(""); err == nil {
		t.Fatal("expected error for missing header")
	}
	if _, err := jwtSvc.ExtractTokenFromHeader("Basic abc123"); err == nil {
		t.Fatal("expected error for non-bearer header")
	}
	if _, err := jwtSvc.ExtractTokenFromHeader("Bearer"); err == nil {
		t.Fatal("expected error for header without token")
	}
}

func TestTokenIsWellFormedJWT(t *testing.T) {
	ds := newTestDB(t)
	jwtSvc := newTestJWT()
	user := seedTestUser(t, ds)

	token := mintToken(t, jwtSvc, user)
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Fatalf("expected header.payload.signature, got %d segments", len(parts))
	}
}
