package services

import (
	"encoding/json"
	"testing"
)

func TestKafkaDisabledWithoutBrokers(t *testing.T) {
	svc := &KafkaService{}
	if svc.Enabled() {
		t.Fatal("service without brokers must be disabled")
	}

	// Disabled and unwired producers both drop events silently.
	svc.Emit("quiz.answered", map[string]interface{}{"user_id": "usr_test_001"})

	var unwired *KafkaService
	unwired.Emit("analysis.completed", map[string]interface{}{"task_id": "task_ab12cd34"})
}

func TestKafkaEnabledWithBrokers(t *testing.T) {
	svc := &KafkaService{brokers: "localhost:9092"}
	if !svc.Enabled() {
		t.Fatal("service with brokers must be enabled")
	}
}

func TestEventEnvelopeShape(t *testing.T) {
	data, err := eventEnvelope("quiz.answered", map[string]interface{}{
		"user_id":     "usr_test_001",
		"question_id": "q1",
		"correct":     true,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var envelope struct {
		EventType string                 `json:"event_type"`
		Payload   map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if envelope.EventType != "quiz.answered" {
		t.Fatalf("event_type = %q", envelope.EventType)
	}
	if envelope.Payload["user_id"] != "usr_test_001" {
		t.Fatalf("payload user_id = %v", envelope.Payload["user_id"])
	}
	if envelope.Payload["correct"] != true {
		t.Fatalf("payload correct = %v", envelope.Payload["correct"])
	}
}
