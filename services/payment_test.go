package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/shared"
)

func newPaymentService(t *testing.T) (*PaymentService, *SqliteService, string) {
	t.Helper()

	ds := newTestDB(t)
	jwtSvc := newTestJWT()
	svc := &PaymentService{
		jwtSvc:     jwtSvc,
		sqlSvc:     ds,
		latencySvc: newTestLatency(),
	}

	user := seedTestUser(t, ds)
	token := mintToken(t, jwtSvc, user)

	features, _ := json.Marshal([]string{"무제한 분석", "광고 제거"})
	plans := []*model.Plan{
		{ID: "monthly", Name: "월간 프리미엄", Price: 4900, Currency: "KRW", Features: features, DurationDays: 30},
		{ID: "yearly", Name: "연간 프리미엄", Price: 39000, Currency: "KRW", Features: features, DurationDays: 365},
	}
	for _, plan := range plans {
		if err := ds.CreatePlan(plan); err != nil {
			t.Fatalf("seed plan: %v", err)
		}
	}

	return svc, ds, token
}

func TestGetPlansIsPublic(t *testing.T) {
	svc, _, _ := newPaymentService(t)

	resp, err := svc.GetPlans()
	if err != nil {
		t.Fatalf("plans: %v", err)
	}
	if len(resp.Plans) != 2 {
		t.Fatalf("plans = %d, want 2", len(resp.Plans))
	}
	// Price ascending, so monthly first.
	if resp.Plans[0].ID != "monthly" || resp.Plans[1].ID != "yearly" {
		t.Fatalf("order = %s, %s", resp.Plans[0].ID, resp.Plans[1].ID)
	}
	if resp.Plans[0].Price != 4900 || resp.Plans[0].Currency != "KRW" {
		t.Fatalf("monthly = %+v", resp.Plans[0])
	}
	if len(resp.Plans[0].Features) == 0 {
		t.Fatal("features must survive the round trip")
	}
}

func TestCheckoutRequiresToken(t *testing.T) {
	svc, _, _ := newPaymentService(t)

	if _, err := svc.Checkout("", dto.CheckoutRequest{PlanID: "monthly"}); !shared.IsErrorType(err, shared.ErrTypeUnauthenticated) {
		t.Fatalf("expected UNAUTHENTICATED, got %v", err)
	}
}

func TestCheckoutExpiryFollowsPlanDuration(t *testing.T) {
	svc, _, token := newPaymentService(t)

	cases := []struct {
		planID string
		days   int
	}{
		{"monthly", 30},
		{"yearly", 365},
	}

	for _, tc := range cases {
		resp, err := svc.Checkout(token, dto.CheckoutRequest{PlanID: tc.planID})
		if err != nil {
			t.Fatalf("checkout %s: %v", tc.planID, err)
		}
		if !resp.Success {
			t.Fatalf("checkout %s not successful", tc.planID)
		}
		if resp.TransactionID == "" {
			t.Fatal("expected a transaction id")
		}
		if resp.NewSubscriptionType != shared.SubscriptionPremium {
			t.Fatalf("subscription = %q", resp.NewSubscriptionType)
		}

		want := time.Now().Add(time.Duration(tc.days) * 24 * time.Hour)
		if diff := resp.ExpiresAt.Sub(want); diff < -time.Minute || diff > time.Minute {
			t.Fatalf("%s expiry off by %v", tc.planID, diff)
		}
	}
}

func TestCheckoutUpgradesUser(t *testing.T) {
	svc, ds, token := newPaymentService(t)

	if _, err := svc.Checkout(token, dto.CheckoutRequest{PlanID: "monthly"}); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	user, err := ds.GetUser("usr_test_001")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.SubscriptionType != shared.SubscriptionPremium {
		t.Fatalf("subscription = %q, want premium", user.SubscriptionType)
	}
}

func TestCheckoutUnknownPlan(t *testing.T) {
	svc, _, token := newPaymentService(t)

	_, err := svc.Checkout(token, dto.CheckoutRequest{PlanID: "lifetime"})
	if !shared.IsErrorType(err, shared.ErrTypeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
