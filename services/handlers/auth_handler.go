package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

type AuthHandler struct {
	authSvc AuthServiceInterface
	jwtSvc  JWTServiceInterface
}

func NewAuthHandler(authSvc AuthServiceInterface, jwtSvc JWTServiceInterface) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
		jwtSvc:  jwtSvc,
	}
}

// bearerToken pulls the raw token out of the Authorization header. A missing
// or malformed header yields the empty token, which every service gate
// rejects fast - the handler never pre-judges authentication.
func bearerToken(c *fiber.Ctx, jwtSvc JWTServiceInterface) string {
	token, err := jwtSvc.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return ""
	}
	return token
}

// @Summary Login
// @Description Authenticate with any non-empty credential pair and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body dto.LoginRequest true "Login credentials"
// @Success 200 {object} shared.Response{data=dto.AuthResponse}
// @Router /api/v1/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.authSvc.Login(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Login successful", resp)
}

// @Summary Signup
// @Description Create a new detective profile and log it in
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body dto.SignupRequest true "Signup details"
// @Success 201 {object} shared.Response{data=dto.AuthResponse}
// @Router /api/v1/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.authSvc.Signup(req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "User registered successfully", resp)
}

// @Summary Logout
// @Description Revoke the current session
// @Tags auth
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.authSvc.Logout(bearerToken(c, h.jwtSvc)); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Logout successful", nil)
}
