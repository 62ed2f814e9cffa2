package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

type PaymentHandler struct {
	paymentSvc PaymentServiceInterface
	jwtSvc     JWTServiceInterface
}

func NewPaymentHandler(paymentSvc PaymentServiceInterface, jwtSvc JWTServiceInterface) *PaymentHandler {
	return &PaymentHandler{
		paymentSvc: paymentSvc,
		jwtSvc:     jwtSvc,
	}
}

// @Summary List subscription plans
// @Description Fetch the plan catalog. Public, no token required
// @Tags payment
// @Produce json
// @Success 200 {object} shared.Response{data=dto.PlansResponse}
// @Router /api/v1/payment/plans [get]
func (h *PaymentHandler) GetPlans(c *fiber.Ctx) error {
	resp, err := h.paymentSvc.GetPlans()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Checkout
// @Description Purchase a subscription plan and upgrade the session's user
// @Tags payment
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param checkoutRequest body dto.CheckoutRequest true "Plan to purchase"
// @Success 200 {object} shared.Response{data=dto.CheckoutResponse}
// @Router /api/v1/payment/checkout [post]
func (h *PaymentHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.paymentSvc.Checkout(bearerToken(c, h.jwtSvc), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Checkout complete", resp)
}
