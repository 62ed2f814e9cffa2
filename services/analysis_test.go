package services

import (
	"sync"
	"testing"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

func newAnalysisService() *AnalysisService {
	return &AnalysisService{
		jwtSvc:     newTestJWT(),
		latencySvc: newTestLatency(),
	}
}

func TestStartRunRequiresToken(t *testing.T) {
	svc := newAnalysisService()

	run, err := svc.StartRun("", "clip.mp4")
	if !shared.IsErrorType(err, shared.ErrTypeUnauthenticated) {
		t.Fatalf("expected UNAUTHENTICATED, got %v", err)
	}
	if run != nil {
		t.Fatal("rejected run must emit nothing")
	}
}

func TestRunEmitsOrderedTranscript(t *testing.T) {
	svc := newAnalysisService()

	run, err := svc.StartRun("token", "https://example.com/clip.mp4")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if run.TaskID == "" {
		t.Fatal("expected a task id")
	}

	var entries []dto.AnalysisLogEntry
	for entry := range run.Events() {
		entries = append(entries, entry)
	}
	report, err := run.Wait()
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(entries) == 0 {
		t.Fatal("expected a transcript")
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.Before(entries[i-1].Timestamp) {
			t.Fatal("timestamps must be non-decreasing")
		}
	}

	last := entries[len(entries)-1]
	if last.Stage != shared.StageCompleted || last.Type != shared.LogSuccess {
		t.Fatalf("final entry = %+v", last)
	}

	// Stages appear in pipeline order.
	order := map[string]int{
		shared.StageUploading:  0,
		shared.StageConnecting: 1,
		shared.StageProcessing: 2,
		shared.StageCompleted:  3,
	}
	prev := -1
	for _, entry := range entries {
		rank, ok := order[entry.Stage]
		if !ok {
			t.Fatalf("unexpected stage %q", entry.Stage)
		}
		if rank < prev {
			t.Fatalf("stage %q regressed", entry.Stage)
		}
		prev = rank
	}

	if report == nil {
		t.Fatal("expected a report")
	}
	if report.TaskID != run.TaskID {
		t.Fatalf("report task %q != run task %q", report.TaskID, run.TaskID)
	}
	if len(report.ManipulatedRegions) == 0 {
		t.Fatal("expected manipulated regions")
	}
	if report.Verdict != shared.VerdictFake || report.ConfidenceScore != 94.7 {
		t.Fatalf("report = %+v", report)
	}
	if report.ProcessingTimeMs < 0 {
		t.Fatalf("processing time = %d", report.ProcessingTimeMs)
	}
}

func TestRunEmptySourceFailsWithErrorStage(t *testing.T) {
	svc := newAnalysisService()

	run, err := svc.StartRun("token", "")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	var entries []dto.AnalysisLogEntry
	for entry := range run.Events() {
		entries = append(entries, entry)
	}
	report, err := run.Wait()

	if !shared.IsErrorType(err, shared.ErrTypeOperationFailed) {
		t.Fatalf("expected OPERATION_FAILED, got %v", err)
	}
	if report != nil {
		t.Fatal("failed run must not produce a report")
	}
	if len(entries) != 1 || entries[0].Stage != shared.StageError {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestConcurrentRunsAreIndependent(t *testing.T) {
	svc := newAnalysisService()

	const runs = 4
	taskIDs := make([]string, runs)
	var wg sync.WaitGroup

	for i := 0; i < runs; i++ {
		run, err := svc.StartRun("token", "clip.mp4")
		if err != nil {
			t.Fatalf("start %d: %v", i, err)
		}
		taskIDs[i] = run.TaskID

		wg.Add(1)
		go func(r *AnalysisRun) {
			defer wg.Done()
			for range r.Events() {
			}
			if _, err := r.Wait(); err != nil {
				t.Errorf("run %s: %v", r.TaskID, err)
			}
		}(run)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, id := range taskIDs {
		if seen[id] {
			t.Fatalf("duplicate task id %s", id)
		}
		seen[id] = true
	}
}

func TestRunCallbackForm(t *testing.T) {
	svc := newAnalysisService()

	var count int
	report, err := svc.Run("token", "clip.mp4", func(entry dto.AnalysisLogEntry) {
		count++
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count == 0 {
		t.Fatal("callback never fired")
	}
	if report == nil {
		t.Fatal("expected a report")
	}
}
