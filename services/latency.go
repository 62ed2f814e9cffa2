package services

import (
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
)

// LatencyService emulates round-trip variance for the simulated backends.
// Every call sleeps for a uniformly distributed duration in [min, max],
// scaled by MOCK_LATENCY_SCALE (0 disables delays entirely, used in tests).
type LatencyService struct {
	context.DefaultService

	scale float64
}

const LATENCY_SVC = "latency_svc"

func (svc LatencyService) Id() string {
	return LATENCY_SVC
}

func (svc *LatencyService) Configure(ctx *context.Context) error {
	svc.scale = 1
	if raw := os.Getenv("MOCK_LATENCY_SCALE"); raw != "" {
		if scale, err := strconv.ParseFloat(raw, 64); err == nil && scale >= 0 {
			svc.scale = scale
		}
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *LatencyService) Start() error {
	return nil
}

// Delay suspends the caller for a random duration within [min, max].
func (svc *LatencyService) Delay(min, max time.Duration) {
	if svc.scale <= 0 || max <= 0 {
		return
	}
	if max < min {
		min, max = max, min
	}

	d := min
	if span := max - min; span > 0 {
		d += time.Duration(rand.Int63n(int64(span)))
	}
	time.Sleep(time.Duration(float64(d) * svc.scale))
}

// DelayMs is Delay with millisecond bounds, matching how the original
// services quoted their latency windows.
func (svc *LatencyService) DelayMs(min, max int) {
	svc.Delay(time.Duration(min)*time.Millisecond, time.Duration(max)*time.Millisecond)
}
