package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

type stubJWT struct{}

func (stubJWT) ExtractTokenFromHeader(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", shared.ErrUnauthenticated("")
	}
	return strings.TrimPrefix(authHeader, "Bearer "), nil
}

func (stubJWT) WithAuth(token string) (*dto.RequestMeta, error) {
	if token == "" {
		return nil, shared.ErrUnauthenticated("")
	}
	return &dto.RequestMeta{Authorization: "Bearer " + token}, nil
}

type stubRun struct {
	entries []dto.AnalysisLogEntry
	report  *dto.DeepfakeReport
	err     error
}

func (r *stubRun) Events() <-chan dto.AnalysisLogEntry {
	ch := make(chan dto.AnalysisLogEntry, len(r.entries))
	for _, entry := range r.entries {
		ch <- entry
	}
	close(ch)
	return ch
}

func (r *stubRun) Wait() (*dto.DeepfakeReport, error) {
	return r.report, r.err
}

type stubAnalysisService struct {
	run    *stubRun
	starts int
}

func (s *stubAnalysisService) StartRun(token, source string) (AnalysisRunStream, error) {
	if token == "" {
		return nil, shared.ErrUnauthenticated("No token provided")
	}
	s.starts++
	return s.run, nil
}

// newAnalysisApp wires the handler behind the same app-error mapping the
// server's fiber error handler applies.
func newAnalysisApp(svc *stubAnalysisService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if appErr, ok := shared.GetAppError(err); ok {
				return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
			}
			return shared.ResponseInternalError(c, err)
		},
	})

	h := NewAnalysisHandler(svc, stubJWT{}, nil)
	app.Post("/api/v1/analysis", h.Analyze)
	return app
}

func TestAnalyzeWithoutTokenReturns401(t *testing.T) {
	svc := &stubAnalysisService{run: &stubRun{}}
	app := newAnalysisApp(svc)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/analysis", strings.NewReader(`{"source":"clip.mp4"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); strings.Contains(ct, "text/event-stream") {
		t.Fatalf("rejected call must not open an event stream, got content type %q", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "event:") {
		t.Fatalf("rejected call leaked stream events: %s", body)
	}
	if svc.starts != 0 {
		t.Fatalf("pipeline started %d times for an unauthenticated call", svc.starts)
	}
}

func TestAnalyzeStreamsLogAndReport(t *testing.T) {
	svc := &stubAnalysisService{
		run: &stubRun{
			entries: []dto.AnalysisLogEntry{
				{Timestamp: time.Now(), Stage: shared.StageUploading, Message: "업로드 시작", Type: shared.LogInfo},
				{Timestamp: time.Now(), Stage: shared.StageCompleted, Message: "분석 완료", Type: shared.LogSuccess},
			},
			report: &dto.DeepfakeReport{TaskID: "task_ab12cd34", Verdict: shared.VerdictFake},
		},
	}
	app := newAnalysisApp(svc)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/analysis", strings.NewReader(`{"source":"clip.mp4"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer tok")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get(fiber.HeaderContentType); !strings.Contains(ct, "text/event-stream") {
		t.Fatalf("content type = %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}

	text := string(body)
	if strings.Count(text, "event: log") != 2 {
		t.Fatalf("log events = %d, want 2\n%s", strings.Count(text, "event: log"), text)
	}
	if !strings.Contains(text, "event: report") {
		t.Fatalf("missing report event:\n%s", text)
	}
	if !strings.Contains(text, "task_ab12cd34") {
		t.Fatalf("report payload missing task id:\n%s", text)
	}
}

func TestAnalyzeRejectsMissingSource(t *testing.T) {
	app := newAnalysisApp(&stubAnalysisService{run: &stubRun{}})

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/analysis", strings.NewReader(`{}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer tok")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
