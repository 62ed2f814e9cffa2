package main

import (
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/pawfiler/deepfind_api/services"
)

// @title DeepFind API
// @version 1.0
// @description Deepfake detection training playground backend
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.LatencyService{},
		&services.SqliteService{},
		&services.RedisService{},
		&services.MinIOService{},
		&services.KafkaService{},
		&services.JWTService{},
		&services.MonitoringService{},

		&services.AuthService{},
		&services.UserService{},
		&services.QuizService{},
		&services.CommunityService{},
		&services.PaymentService{},
		&services.DashboardService{},
		&services.AnalysisService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Context build failed")
		return
	}

	if err = ctx.Run(); err != nil {
		log.Fatal().Err(err).Msg("Runtime stopped")
		return
	}
}
