package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

type QuizHandler struct {
	quizSvc QuizServiceInterface
	jwtSvc  JWTServiceInterface
}

func NewQuizHandler(quizSvc QuizServiceInterface, jwtSvc JWTServiceInterface) *QuizHandler {
	return &QuizHandler{
		quizSvc: quizSvc,
		jwtSvc:  jwtSvc,
	}
}

// @Summary Get quiz question
// @Description Fetch one random question, optionally filtered by difficulty
// @Tags quiz
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param difficulty query string false "easy|medium|hard"
// @Success 200 {object} shared.Response{data=dto.QuizQuestionResponse}
// @Router /api/v1/quiz/question [get]
func (h *QuizHandler) GetQuestion(c *fiber.Ctx) error {
	resp, err := h.quizSvc.GetQuestion(bearerToken(c, h.jwtSvc), c.Query("difficulty"))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Submit quiz answer
// @Description Grade an answer; unknown question ids degrade to an incorrect answer
// @Tags quiz
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param submitRequest body dto.QuizSubmitRequest true "Answer"
// @Success 200 {object} shared.Response{data=dto.QuizSubmitResponse}
// @Router /api/v1/quiz/submit [post]
func (h *QuizHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.QuizSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.quizSvc.SubmitAnswer(bearerToken(c, h.jwtSvc), req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Get quiz stats
// @Description Fetch the session's quiz statistics
// @Tags quiz
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.QuizStatsResponse}
// @Router /api/v1/quiz/stats [get]
func (h *QuizHandler) GetStats(c *fiber.Ctx) error {
	resp, err := h.quizSvc.GetStats(bearerToken(c, h.jwtSvc))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
