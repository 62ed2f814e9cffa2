package client

import (
	"testing"
	"time"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

func entry(stage, message string) dto.AnalysisLogEntry {
	return dto.AnalysisLogEntry{
		Timestamp: time.Now(),
		Stage:     stage,
		Message:   message,
		Type:      shared.LogInfo,
	}
}

func TestMonitorTracksStage(t *testing.T) {
	m := NewAnalysisMonitor()

	if m.Stage() != shared.StageIdle {
		t.Fatalf("initial stage = %q", m.Stage())
	}
	if m.Done() {
		t.Fatal("fresh monitor must not be done")
	}

	m.Observe(entry(shared.StageUploading, "업로드 시작"))
	if m.Stage() != shared.StageUploading {
		t.Fatalf("stage = %q", m.Stage())
	}

	m.Observe(entry(shared.StageProcessing, "추론 중"))
	m.Observe(entry(shared.StageCompleted, "분석 완료"))

	if m.Stage() != shared.StageCompleted {
		t.Fatalf("stage = %q", m.Stage())
	}
	if !m.Done() {
		t.Fatal("completed run must be done")
	}
	if got := len(m.Transcript()); got != 3 {
		t.Fatalf("transcript = %d entries", got)
	}
}

func TestMonitorErrorIsTerminal(t *testing.T) {
	m := NewAnalysisMonitor()
	m.Observe(entry(shared.StageError, "빈 소스"))

	if m.Stage() != shared.StageError {
		t.Fatalf("stage = %q", m.Stage())
	}
	if !m.Done() {
		t.Fatal("error stage is terminal")
	}
}
