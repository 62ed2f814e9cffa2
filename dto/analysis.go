package dto

import "time"

// AnalysisLogEntry is one line of the pipeline's live transcript. Stage is
// explicit so consumers never have to infer it from the message text.
type AnalysisLogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Stage     string    `json:"stage" example:"SAGEMAKER_PROCESSING"`
	Message   string    `json:"message"`
	Type      string    `json:"type" example:"info"`
}

type ManipulatedRegion struct {
	Label      string  `json:"label" example:"얼굴 영역 (입 주변)"`
	Confidence float64 `json:"confidence" example:"96.2"`
}

type DeepfakeReport struct {
	TaskID               string              `json:"taskId" example:"task_1a2b3c4d"`
	Verdict              string              `json:"verdict" example:"fake"`
	ConfidenceScore      float64             `json:"confidenceScore" example:"94.7"`
	ManipulatedRegions   []ManipulatedRegion `json:"manipulatedRegions"`
	FrameSamplesAnalyzed int                 `json:"frameSamplesAnalyzed" example:"240"`
	ModelVersion         string              `json:"modelVersion" example:"deepfind-v3.2-fp16"`
	ProcessingTimeMs     int64               `json:"processingTimeMs" example:"4832"`
}

type AnalysisRequest struct {
	Source string `json:"source" validate:"required" example:"https://example.com/clip.mp4"`
}

func (a AnalysisRequest) Validate() error {
	return GetValidator().Struct(a)
}
