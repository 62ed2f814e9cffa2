package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pawfiler/deepfind_api/shared"
)

type DashboardHandler struct {
	dashboardSvc DashboardServiceInterface
	jwtSvc       JWTServiceInterface
}

func NewDashboardHandler(dashboardSvc DashboardServiceInterface, jwtSvc JWTServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
		jwtSvc:       jwtSvc,
	}
}

// @Summary Get dashboard
// @Description Fetch the composite home screen payload in one round trip
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.DashboardResponse}
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	resp, err := h.dashboardSvc.Aggregate(bearerToken(c, h.jwtSvc))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
