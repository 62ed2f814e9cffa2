package client

import (
	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

// AnalysisMonitor mirrors what the analysis screen shows: the current stage
// taken from each entry's explicit stage field, and the full transcript in
// arrival order.
type AnalysisMonitor struct {
	stage      string
	transcript []dto.AnalysisLogEntry
}

func NewAnalysisMonitor() *AnalysisMonitor {
	return &AnalysisMonitor{stage: shared.StageIdle}
}

// Observe folds one log entry into the monitor.
func (m *AnalysisMonitor) Observe(entry dto.AnalysisLogEntry) {
	if entry.Stage != "" {
		m.stage = entry.Stage
	}
	m.transcript = append(m.transcript, entry)
}

// Stage is the stage of the most recent entry, or IDLE before any arrive.
func (m *AnalysisMonitor) Stage() string {
	return m.stage
}

// Transcript returns every observed entry in arrival order.
func (m *AnalysisMonitor) Transcript() []dto.AnalysisLogEntry {
	out := make([]dto.AnalysisLogEntry, len(m.transcript))
	copy(out, m.transcript)
	return out
}

// Done reports whether the run reached a terminal stage.
func (m *AnalysisMonitor) Done() bool {
	return m.stage == shared.StageCompleted || m.stage == shared.StageError
}
