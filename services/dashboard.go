package services

import (
	"golang.org/x/sync/errgroup"

	"github.com/alphabatem/common/context"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

// Sub-fetch contracts the aggregator fans out to. Satisfied by the concrete
// services; narrow so failure modes can be exercised in isolation.
type profileSource interface {
	GetProfile(token string) (*dto.UserProfileResponse, error)
}

type quizStatsSource interface {
	GetStats(token string) (*dto.QuizStatsResponse, error)
}

type feedSource interface {
	GetFeed(token string, page, pageSize int) (*dto.CommunityFeedResponse, error)
}

// DashboardService is the BFF aggregator for the home screen: one call fans
// out to User, Quiz and Community, and only their joint success produces a
// composite. Any sub-call failure fails the aggregate with that same error.
type DashboardService struct {
	context.DefaultService

	jwtSvc     *JWTService
	latencySvc *LatencyService

	users profileSource
	quiz  quizStatsSource
	feed  feedSource
}

const DASHBOARD_SVC = "dashboard_svc"

func (svc DashboardService) Id() string {
	return DASHBOARD_SVC
}

func (svc *DashboardService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *DashboardService) Start() error {
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.latencySvc = svc.Service(LATENCY_SVC).(*LatencyService)
	svc.users = svc.Service(USER_SVC).(*UserService)
	svc.quiz = svc.Service(QUIZ_SVC).(*QuizService)
	svc.feed = svc.Service(COMMUNITY_SVC).(*CommunityService)
	return nil
}

func (svc *DashboardService) Aggregate(token string) (*dto.DashboardResponse, error) {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return nil, err
	}

	var (
		profile *dto.UserProfileResponse
		stats   *dto.QuizStatsResponse
		feed    *dto.CommunityFeedResponse
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		profile, err = svc.users.GetProfile(token)
		return err
	})
	g.Go(func() (err error) {
		stats, err = svc.quiz.GetStats(token)
		return err
	})
	g.Go(func() (err error) {
		feed, err = svc.feed.GetFeed(token, 1, shared.DefaultFeedPageSize)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Join overhead on top of the slowest sub-fetch.
	svc.latencySvc.DelayMs(200, 400)

	recent := feed.Posts
	if len(recent) > shared.DashboardRecentPosts {
		recent = recent[:shared.DashboardRecentPosts]
	}

	return &dto.DashboardResponse{
		User:        *profile,
		QuizStats:   *stats,
		RecentPosts: recent,
		DailyChallenge: dto.DailyChallenge{
			Title:    "가짜 영상 3번 찾기",
			Progress: 1,
			Total:    3,
			Reward:   50,
		},
	}, nil
}
