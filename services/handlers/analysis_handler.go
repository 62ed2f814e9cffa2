package handlers

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pawfiler/deepfind_api/dto"
)

// ClipStore is the optional object storage for uploaded clips.
type ClipStore interface {
	Enabled() bool
	UploadClip(objectName string, reader io.Reader, objectSize int64, contentType string) (string, error)
}

type AnalysisHandler struct {
	analysisSvc AnalysisServiceInterface
	jwtSvc      JWTServiceInterface
	clipStore   ClipStore
}

func NewAnalysisHandler(analysisSvc AnalysisServiceInterface, jwtSvc JWTServiceInterface, clipStore ClipStore) *AnalysisHandler {
	return &AnalysisHandler{
		analysisSvc: analysisSvc,
		jwtSvc:      jwtSvc,
		clipStore:   clipStore,
	}
}

// @Summary Analyze video
// @Description Run the deepfake detection pipeline and stream its log as server-sent events. Accepts a JSON source reference or a multipart "video" upload
// @Tags analysis
// @Accept json
// @Produce text/event-stream
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param analysisRequest body dto.AnalysisRequest true "Video source reference"
// @Success 200 {string} string "event stream of log entries followed by one report event"
// @Router /api/v1/analysis [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	source, err := h.resolveSource(c)
	if err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			validationResp := dto.CreateValidationErrorResponse(err)
			return c.Status(fiber.StatusBadRequest).JSON(validationResp)
		}
		return err
	}

	token := bearerToken(c, h.jwtSvc)

	// Gate before committing the response: an auth failure must surface as a
	// status code, not as an error event inside an already-started stream.
	run, err := h.analysisSvc.StartRun(token, source)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		for entry := range run.Events() {
			writeSSE(w, "log", entry)
		}

		report, runErr := run.Wait()
		if runErr != nil {
			writeSSE(w, "error", fiber.Map{"error": runErr.Error()})
			return
		}
		writeSSE(w, "report", report)
	})

	return nil
}

// resolveSource takes the clip reference from the JSON body, or stores a
// multipart upload and uses its object name instead.
func (h *AnalysisHandler) resolveSource(c *fiber.Ctx) (string, error) {
	if file, err := c.FormFile("video"); err == nil && file != nil {
		if h.clipStore == nil || !h.clipStore.Enabled() {
			return file.Filename, nil
		}

		f, err := file.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()

		objectName := fmt.Sprintf("clips/%s_%s", uuid.NewString()[:8], file.Filename)
		stored, err := h.clipStore.UploadClip(objectName, f, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			log.Errorf("clip upload failed, falling back to filename: %s", err)
			return file.Filename, nil
		}
		return stored, nil
	}

	var req dto.AnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return "", err
	}

	if err := req.Validate(); err != nil {
		return "", err
	}

	return req.Source, nil
}

func writeSSE(w *bufio.Writer, event string, payload interface{}) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return
	}

	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, body)
	if err := w.Flush(); err != nil {
		log.Debugf("sse client gone: %s", err)
	}
}
