package services

import (
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

// AnalysisService simulates the video-analysis pipeline: upload, MCP session
// handshake, SageMaker inference, verdict. Its only externally observable
// state is the ordered log stream; the report arrives once the stream ends.
type AnalysisService struct {
	context.DefaultService

	jwtSvc     *JWTService
	latencySvc *LatencyService
	kafkaSvc   *KafkaService
}

const ANALYSIS_SVC = "analysis_svc"

const analysisModelVersion = "deepfind-v3.2-fp16"

// AnalysisRun is one in-flight pipeline invocation. Events is finite and
// closed before Wait returns; concurrent runs never share state.
type AnalysisRun struct {
	TaskID string

	events chan dto.AnalysisLogEntry
	done   chan struct{}

	report *dto.DeepfakeReport
	err    error
}

// Events yields the live transcript in emission order.
func (r *AnalysisRun) Events() <-chan dto.AnalysisLogEntry {
	return r.events
}

// Wait blocks until the run terminates and returns the report, or the error
// for a run that ended in the ERROR state.
func (r *AnalysisRun) Wait() (*dto.DeepfakeReport, error) {
	<-r.done
	return r.report, r.err
}

func (svc AnalysisService) Id() string {
	return ANALYSIS_SVC
}

func (svc *AnalysisService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AnalysisService) Start() error {
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.latencySvc = svc.Service(LATENCY_SVC).(*LatencyService)
	svc.kafkaSvc = svc.Service(KAFKA_SVC).(*KafkaService)
	return nil
}

// StartRun gates the token synchronously - an unauthenticated call emits no
// log entries at all - then drives the staged pipeline in the background.
// Cancellation is not supported: once started, every stage runs to completion.
func (svc *AnalysisService) StartRun(token, source string) (*AnalysisRun, error) {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return nil, err
	}

	run := &AnalysisRun{
		TaskID: "task_" + uuid.New().String()[:8],
		events: make(chan dto.AnalysisLogEntry, 32),
		done:   make(chan struct{}),
	}

	go svc.drive(run, source)

	return run, nil
}

// Run is the callback form of StartRun, for consumers that want the original
// onEvent contract instead of a channel.
func (svc *AnalysisService) Run(token, source string, onEvent func(dto.AnalysisLogEntry)) (*dto.DeepfakeReport, error) {
	run, err := svc.StartRun(token, source)
	if err != nil {
		return nil, err
	}

	for entry := range run.Events() {
		if onEvent != nil {
			onEvent(entry)
		}
	}

	return run.Wait()
}

func (svc *AnalysisService) drive(run *AnalysisRun, source string) {
	started := time.Now()

	defer func() {
		close(run.events)
		close(run.done)
		observeAnalysisRun(run.err == nil, time.Since(started))
	}()

	emit := func(stage, message, logType string) {
		run.events <- dto.AnalysisLogEntry{
			Timestamp: time.Now(),
			Stage:     stage,
			Message:   message,
			Type:      logType,
		}
	}

	if source == "" {
		emit(shared.StageError, "⛔ 분석할 영상이 없어요 (빈 소스)", shared.LogError)
		run.err = shared.ErrOperationFailed("No video source provided")
		svc.kafkaSvc.Emit("analysis.failed", map[string]interface{}{
			"task_id": run.TaskID,
			"reason":  "empty_source",
		})
		return
	}

	log.WithFields(log.Fields{"task_id": run.TaskID, "source": source}).Info("Analysis started")

	// Stage: UPLOADING
	emit(shared.StageUploading, "📤 영상 파일 업로드 시작...", shared.LogInfo)
	svc.latencySvc.DelayMs(800, 1200)
	emit(shared.StageUploading, "✅ 업로드 완료 (32.4 MB)", shared.LogSuccess)
	svc.kafkaSvc.Emit("video.uploaded", map[string]interface{}{
		"task_id": run.TaskID,
		"source":  source,
	})

	// Stage: MCP_CONNECTING
	emit(shared.StageConnecting, "🔌 MCP Router에 연결 중...", shared.LogInfo)
	svc.latencySvc.DelayMs(600, 1000)
	emit(shared.StageConnecting, fmt.Sprintf("🔗 MCP Session 수립 완료 (session_id: mcp_%s)", uuid.New().String()[:8]), shared.LogSuccess)
	emit(shared.StageConnecting, "📡 SageMaker 추론 엔드포인트로 페이로드 라우팅...", shared.LogInfo)
	svc.latencySvc.DelayMs(400, 800)

	// Stage: SAGEMAKER_PROCESSING
	emit(shared.StageProcessing, "🧠 SageMaker 추론 시작 (model: "+analysisModelVersion+")", shared.LogInfo)
	svc.latencySvc.DelayMs(500, 700)
	emit(shared.StageProcessing, "🔍 프레임 샘플링 중... (총 240 프레임)", shared.LogInfo)
	svc.latencySvc.DelayMs(600, 900)
	emit(shared.StageProcessing, "🔬 얼굴 영역 탐지 및 특징 추출...", shared.LogInfo)
	svc.latencySvc.DelayMs(700, 1100)
	emit(shared.StageProcessing, "📊 조작 흔적 분석 중...", shared.LogInfo)
	svc.latencySvc.DelayMs(500, 800)
	emit(shared.StageProcessing, "⚡ GAN 아티팩트 스캐닝...", shared.LogInfo)
	svc.latencySvc.DelayMs(400, 600)

	// Stage: COMPLETED
	emit(shared.StageCompleted, "✅ 분석 완료!", shared.LogSuccess)

	// The verdict is illustrative: the mock never inspects the actual input.
	run.report = &dto.DeepfakeReport{
		TaskID:          run.TaskID,
		Verdict:         shared.VerdictFake,
		ConfidenceScore: 94.7,
		ManipulatedRegions: []dto.ManipulatedRegion{
			{Label: "얼굴 영역 (입 주변)", Confidence: 96.2},
			{Label: "눈 깜빡임 패턴", Confidence: 91.3},
			{Label: "피부 텍스처 불일치", Confidence: 88.8},
		},
		FrameSamplesAnalyzed: 240,
		ModelVersion:         analysisModelVersion,
		ProcessingTimeMs:     time.Since(started).Milliseconds(),
	}

	svc.kafkaSvc.Emit("analysis.completed", map[string]interface{}{
		"task_id":    run.TaskID,
		"verdict":    run.report.Verdict,
		"confidence": run.report.ConfidenceScore,
	})
}
