package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

type UserHandler struct {
	userSvc UserServiceInterface
	jwtSvc  JWTServiceInterface
}

func NewUserHandler(userSvc UserServiceInterface, jwtSvc JWTServiceInterface) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
		jwtSvc:  jwtSvc,
	}
}

// @Summary Get profile
// @Description Fetch the session's user profile
// @Tags user
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.UserProfileResponse}
// @Router /api/v1/user/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	resp, err := h.userSvc.GetProfile(bearerToken(c, h.jwtSvc))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Update profile
// @Description Merge the provided fields into the profile and persist it
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param updateRequest body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=dto.UserProfileResponse}
// @Router /api/v1/user/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.userSvc.UpdateProfile(bearerToken(c, h.jwtSvc), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Profile updated", resp)
}
