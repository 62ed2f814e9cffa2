package handlers

import (
	"github.com/pawfiler/deepfind_api/dto"
)

type AuthServiceInterface interface {
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Signup(req dto.SignupRequest) (*dto.AuthResponse, error)
	Logout(token string) error
}

type JWTServiceInterface interface {
	ExtractTokenFromHeader(authHeader string) (string, error)
	WithAuth(token string) (*dto.RequestMeta, error)
}

type UserServiceInterface interface {
	GetProfile(token string) (*dto.UserProfileResponse, error)
	UpdateProfile(token string, req dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
}

type QuizServiceInterface interface {
	GetQuestion(token, difficulty string) (*dto.QuizQuestionResponse, error)
	SubmitAnswer(token string, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error)
	GetStats(token string) (*dto.QuizStatsResponse, error)
}

type CommunityServiceInterface interface {
	GetFeed(token string, page, pageSize int) (*dto.CommunityFeedResponse, error)
	CreatePost(token string, req dto.CreatePostRequest) (*dto.CommunityPost, error)
	UpdatePost(token, postID string, req dto.UpdatePostRequest) (*dto.CommunityPost, error)
	DeletePost(token, postID string) error
}

type PaymentServiceInterface interface {
	GetPlans() (*dto.PlansResponse, error)
	Checkout(token string, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type DashboardServiceInterface interface {
	Aggregate(token string) (*dto.DashboardResponse, error)
}

// AnalysisRunStream is one started pipeline run: a finite event channel
// followed by the terminal report.
type AnalysisRunStream interface {
	Events() <-chan dto.AnalysisLogEntry
	Wait() (*dto.DeepfakeReport, error)
}

type AnalysisServiceInterface interface {
	StartRun(token, source string) (AnalysisRunStream, error)
}
