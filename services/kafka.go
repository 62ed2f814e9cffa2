package services

import (
	"context"
	"os"
	"strings"

	appContext "github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

// KafkaService publishes domain events (quiz answers, analysis outcomes) to
// the shared event topic. Optional: when KAFKA_BROKERS is unset the service
// stays disabled and Emit is a no-op.
type KafkaService struct {
	appContext.DefaultService

	writer  *kafka.Writer
	brokers string
	topic   string
}

const KAFKA_SVC = "kafka_svc"

func (svc KafkaService) Id() string {
	return KAFKA_SVC
}

func (svc *KafkaService) Configure(ctx *appContext.Context) error {
	svc.brokers = os.Getenv("KAFKA_BROKERS")

	svc.topic = os.Getenv("KAFKA_TOPIC")
	if svc.topic == "" {
		svc.topic = "deepfind-events"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *KafkaService) Start() error {
	if !svc.Enabled() {
		log.Println("Kafka disabled (KAFKA_BROKERS not set), domain events stay local")
		return nil
	}

	svc.writer = &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(svc.brokers, ",")...),
		Topic:    svc.topic,
		Balancer: &kafka.LeastBytes{},
	}

	log.Printf("Kafka producer started for topic %s via %s", svc.topic, svc.brokers)
	return nil
}

func (svc *KafkaService) Enabled() bool {
	return svc.brokers != ""
}

// Emit publishes one event envelope. Best effort: a broker failure is logged
// and never surfaces into the request path, and a disabled or unwired service
// drops the event silently.
func (svc *KafkaService) Emit(eventType string, payload map[string]interface{}) {
	if svc == nil || svc.writer == nil {
		return
	}

	data, err := eventEnvelope(eventType, payload)
	if err != nil {
		log.WithError(err).WithField("event_type", eventType).Error("Failed to encode event")
		return
	}

	if err := svc.writer.WriteMessages(context.Background(), kafka.Message{Value: data}); err != nil {
		log.WithError(err).WithField("event_type", eventType).Error("Failed to emit event")
		return
	}

	log.WithField("event_type", eventType).Debug("Event emitted")
}

func (svc *KafkaService) Shutdown() {
	if svc.writer != nil {
		_ = svc.writer.Close()
	}
}

func eventEnvelope(eventType string, payload map[string]interface{}) ([]byte, error) {
	return sonic.Marshal(map[string]interface{}{
		"event_type": eventType,
		"payload":    payload,
	})
}
