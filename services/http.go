package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	_ "github.com/pawfiler/deepfind_api/docs"
	"github.com/pawfiler/deepfind_api/services/handlers"
	"github.com/pawfiler/deepfind_api/shared"
)

type HttpService struct {
	context.DefaultService

	jwtSvc        *JWTService
	authSvc       *AuthService
	userSvc       *UserService
	quizSvc       *QuizService
	communitySvc  *CommunityService
	paymentSvc    *PaymentService
	dashboardSvc  *DashboardService
	analysisSvc   *AnalysisService
	minioSvc      *MinIOService
	monitoringSvc *MonitoringService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.userSvc = svc.Service(USER_SVC).(*UserService)
	svc.quizSvc = svc.Service(QUIZ_SVC).(*QuizService)
	svc.communitySvc = svc.Service(COMMUNITY_SVC).(*CommunityService)
	svc.paymentSvc = svc.Service(PAYMENT_SVC).(*PaymentService)
	svc.dashboardSvc = svc.Service(DASHBOARD_SVC).(*DashboardService)
	svc.analysisSvc = svc.Service(ANALYSIS_SVC).(*AnalysisService)
	svc.minioSvc = svc.Service(MINIO_SVC).(*MinIOService)
	svc.monitoringSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	svc.app = fiber.New(fiber.Config{
		AppName:      "DeepFind API",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: svc.handleError,
	})

	svc.app.Use(recover.New())
	svc.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	svc.app.Use(svc.monitoringSvc.FiberMiddleware())

	svc.app.Get("/ping", svc.ping)
	svc.app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	authHandler := handlers.NewAuthHandler(svc.authSvc, svc.jwtSvc)
	userHandler := handlers.NewUserHandler(svc.userSvc, svc.jwtSvc)
	quizHandler := handlers.NewQuizHandler(svc.quizSvc, svc.jwtSvc)
	communityHandler := handlers.NewCommunityHandler(svc.communitySvc, svc.jwtSvc)
	paymentHandler := handlers.NewPaymentHandler(svc.paymentSvc, svc.jwtSvc)
	dashboardHandler := handlers.NewDashboardHandler(svc.dashboardSvc, svc.jwtSvc)
	analysisHandler := handlers.NewAnalysisHandler(analysisStarter{svc.analysisSvc}, svc.jwtSvc, svc.minioSvc)

	v1 := svc.app.Group("/api/v1")

	v1.Get("/ping", svc.ping)

	v1.Post("/login", authHandler.Login)
	v1.Post("/signup", authHandler.Signup)
	v1.Post("/logout", authHandler.Logout)

	v1.Get("/user/profile", userHandler.GetProfile)
	v1.Put("/user/profile", userHandler.UpdateProfile)

	v1.Get("/quiz/question", quizHandler.GetQuestion)
	v1.Post("/quiz/submit", quizHandler.SubmitAnswer)
	v1.Get("/quiz/stats", quizHandler.GetStats)

	v1.Get("/community/feed", communityHandler.GetFeed)
	v1.Post("/community/posts", communityHandler.CreatePost)
	v1.Put("/community/posts/:id", communityHandler.UpdatePost)
	v1.Delete("/community/posts/:id", communityHandler.DeletePost)

	v1.Get("/payment/plans", paymentHandler.GetPlans)
	v1.Post("/payment/checkout", paymentHandler.Checkout)

	v1.Get("/dashboard", dashboardHandler.GetDashboard)

	v1.Post("/analysis", analysisHandler.Analyze)

	svc.app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	log.Infof("HTTP listening on :%d", svc.port)
	return svc.app.Listen(fmt.Sprintf(":%d", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set(fiber.HeaderCacheControl, "max-age=10")

	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

// analysisStarter narrows AnalysisService to the handler-side run contract.
type analysisStarter struct {
	svc *AnalysisService
}

func (a analysisStarter) StartRun(token, source string) (handlers.AnalysisRunStream, error) {
	run, err := a.svc.StartRun(token, source)
	if err != nil {
		return nil, err
	}
	return run, nil
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
