package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	appContext "github.com/alphabatem/common/context"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/shared"
)

// PaymentService simulates the subscription backend. Checkout always succeeds
// for a known plan; there is no payment failure path in this product.
type PaymentService struct {
	appContext.DefaultService

	jwtSvc     *JWTService
	sqlSvc     *SqliteService
	latencySvc *LatencyService
	redisSvc   *RedisService
}

const PAYMENT_SVC = "payment_svc"

const (
	planCacheKey = "plans:catalog"
	planCacheTTL = 10 * time.Minute
)

func (svc PaymentService) Id() string {
	return PAYMENT_SVC
}

func (svc *PaymentService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *PaymentService) Start() error {
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.latencySvc = svc.Service(LATENCY_SVC).(*LatencyService)
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

// GetPlans returns the subscription catalog. Unlike the other operations the
// catalog is public, so no bearer gate.
func (svc *PaymentService) GetPlans() (*dto.PlansResponse, error) {
	svc.latencySvc.DelayMs(200, 400)

	if cached := svc.cachedPlans(); cached != nil {
		return cached, nil
	}

	plans, err := svc.sqlSvc.GetPlans()
	if err != nil {
		return nil, err
	}

	resp := &dto.PlansResponse{Plans: make([]dto.SubscriptionPlan, 0, len(plans))}
	for i := range plans {
		resp.Plans = append(resp.Plans, planResponse(&plans[i]))
	}

	svc.cachePlans(resp)
	return resp, nil
}

func (svc *PaymentService) Checkout(token string, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return nil, err
	}

	claims, err := svc.jwtSvc.VerifyJWTToken(token)
	if err != nil {
		return nil, shared.ErrUnauthenticated("Invalid JWT token")
	}

	svc.latencySvc.DelayMs(1000, 1500)

	plan, err := svc.sqlSvc.GetPlan(req.PlanID)
	if err != nil {
		if shared.IsErrorType(err, shared.ErrTypeNotFound) {
			return nil, shared.ErrNotFound("Unknown subscription plan: " + req.PlanID)
		}
		return nil, err
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(plan.DurationDays) * 24 * time.Hour)

	txn := &model.Transaction{
		ID:        "txn_" + uuid.New().String()[:8],
		UserID:    claims.UserID,
		PlanID:    plan.ID,
		Amount:    plan.Price,
		Currency:  plan.Currency,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}
	if err := svc.sqlSvc.CreateTransaction(txn); err != nil {
		return nil, err
	}

	if err := svc.upgradeUser(claims.UserID); err != nil {
		log.WithError(err).WithField(shared.UserID, claims.UserID).Error("Failed to upgrade subscription")
	}

	return &dto.CheckoutResponse{
		Success:             true,
		TransactionID:       txn.ID,
		NewSubscriptionType: shared.SubscriptionPremium,
		ExpiresAt:           expiresAt,
	}, nil
}

func (svc *PaymentService) upgradeUser(userID string) error {
	user, err := svc.sqlSvc.GetUser(userID)
	if err != nil {
		return err
	}

	user.SubscriptionType = shared.SubscriptionPremium
	user.UpdatedAt = time.Now()

	return svc.sqlSvc.UpdateUser(user)
}

func (svc *PaymentService) cachedPlans() *dto.PlansResponse {
	if svc.redisSvc == nil {
		return nil
	}

	var resp dto.PlansResponse
	if err := svc.redisSvc.GetJSON(context.Background(), planCacheKey, &resp); err != nil || len(resp.Plans) == 0 {
		return nil
	}
	return &resp
}

func (svc *PaymentService) cachePlans(resp *dto.PlansResponse) {
	if svc.redisSvc == nil {
		return
	}

	if err := svc.redisSvc.Set(context.Background(), planCacheKey, resp, planCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache plan catalog")
	}
}

func planResponse(plan *model.Plan) dto.SubscriptionPlan {
	var features []string
	if len(plan.Features) > 0 {
		if err := json.Unmarshal(plan.Features, &features); err != nil {
			log.WithError(err).WithField("plan_id", plan.ID).Warn("Malformed plan features")
		}
	}

	return dto.SubscriptionPlan{
		ID:       plan.ID,
		Name:     plan.Name,
		Price:    plan.Price,
		Currency: plan.Currency,
		Features: features,
	}
}
