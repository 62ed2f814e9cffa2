package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

type CommunityHandler struct {
	communitySvc CommunityServiceInterface
	jwtSvc       JWTServiceInterface
}

func NewCommunityHandler(communitySvc CommunityServiceInterface, jwtSvc JWTServiceInterface) *CommunityHandler {
	return &CommunityHandler{
		communitySvc: communitySvc,
		jwtSvc:       jwtSvc,
	}
}

// @Summary Get community feed
// @Description Fetch one page of posts, newest first
// @Tags community
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param page query int false "1-based page number" default(1)
// @Param pageSize query int false "Posts per page" default(5)
// @Success 200 {object} shared.Response{data=dto.CommunityFeedResponse}
// @Router /api/v1/community/feed [get]
func (h *CommunityHandler) GetFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", shared.DefaultFeedPageSize)

	resp, err := h.communitySvc.GetFeed(bearerToken(c, h.jwtSvc), page, pageSize)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Create post
// @Description Publish a new community post authored by the session's user
// @Tags community
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param createRequest body dto.CreatePostRequest true "Post content"
// @Success 201 {object} shared.Response{data=dto.CommunityPost}
// @Router /api/v1/community/posts [post]
func (h *CommunityHandler) CreatePost(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.communitySvc.CreatePost(bearerToken(c, h.jwtSvc), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Post created", resp)
}

// @Summary Update post
// @Description Edit an owned post
// @Tags community
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Post ID"
// @Param updateRequest body dto.UpdatePostRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=dto.CommunityPost}
// @Router /api/v1/community/posts/{id} [put]
func (h *CommunityHandler) UpdatePost(c *fiber.Ctx) error {
	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.communitySvc.UpdatePost(bearerToken(c, h.jwtSvc), c.Params("id"), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Post updated", resp)
}

// @Summary Delete post
// @Description Remove an owned post
// @Tags community
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Post ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/community/posts/{id} [delete]
func (h *CommunityHandler) DeletePost(c *fiber.Ctx) error {
	if err := h.communitySvc.DeletePost(bearerToken(c, h.jwtSvc), c.Params("id")); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Post deleted", nil)
}
