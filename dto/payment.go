package dto

import "time"

type SubscriptionPlan struct {
	ID       string   `json:"id" example:"monthly"`
	Name     string   `json:"name" example:"월간 프리미엄"`
	Price    int      `json:"price" example:"4900"`
	Currency string   `json:"currency" example:"KRW"`
	Features []string `json:"features"`
}

type PlansResponse struct {
	Plans []SubscriptionPlan `json:"plans"`
}

type CheckoutRequest struct {
	PlanID string `json:"planId" validate:"required" example:"monthly"`
}

func (c CheckoutRequest) Validate() error {
	return GetValidator().Struct(c)
}

type CheckoutResponse struct {
	Success             bool      `json:"success" example:"true"`
	TransactionID       string    `json:"transactionId" example:"txn_1a2b3c4d"`
	NewSubscriptionType string    `json:"newSubscriptionType" example:"premium"`
	ExpiresAt           time.Time `json:"expiresAt"`
}
