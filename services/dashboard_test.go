package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/shared"
)

type fakeProfileSource struct {
	profile *dto.UserProfileResponse
	err     error
}

func (f *fakeProfileSource) GetProfile(token string) (*dto.UserProfileResponse, error) {
	return f.profile, f.err
}

type fakeQuizSource struct {
	stats *dto.QuizStatsResponse
	err   error
}

func (f *fakeQuizSource) GetStats(token string) (*dto.QuizStatsResponse, error) {
	return f.stats, f.err
}

type fakeFeedSource struct {
	feed *dto.CommunityFeedResponse
	err  error

	calls int
}

func (f *fakeFeedSource) GetFeed(token string, page, pageSize int) (*dto.CommunityFeedResponse, error) {
	f.calls++
	return f.feed, f.err
}

func feedOf(n int) *dto.CommunityFeedResponse {
	posts := make([]dto.CommunityPost, n)
	for i := range posts {
		posts[i] = dto.CommunityPost{
			ID:        fmt.Sprintf("p%d", i+1),
			Title:     fmt.Sprintf("글 %d", i+1),
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		}
	}
	return &dto.CommunityFeedResponse{Posts: posts, TotalCount: n, Page: 1}
}

func newDashboardService(users *fakeProfileSource, quiz *fakeQuizSource, feed *fakeFeedSource) *DashboardService {
	return &DashboardService{
		jwtSvc:     newTestJWT(),
		latencySvc: newTestLatency(),
		users:      users,
		quiz:       quiz,
		feed:       feed,
	}
}

func TestAggregateRequiresToken(t *testing.T) {
	feed := &fakeFeedSource{feed: feedOf(5)}
	svc := newDashboardService(
		&fakeProfileSource{profile: &dto.UserProfileResponse{ID: "usr_1"}},
		&fakeQuizSource{stats: &dto.QuizStatsResponse{}},
		feed,
	)

	if _, err := svc.Aggregate(""); !shared.IsErrorType(err, shared.ErrTypeUnauthenticated) {
		t.Fatalf("expected UNAUTHENTICATED, got %v", err)
	}
	if feed.calls != 0 {
		t.Fatal("gate must reject before any fan-out")
	}
}

func TestAggregateComposesAllThree(t *testing.T) {
	svc := newDashboardService(
		&fakeProfileSource{profile: &dto.UserProfileResponse{ID: "usr_1", Nickname: "날쌘 여우 탐정", Level: 5}},
		&fakeQuizSource{stats: &dto.QuizStatsResponse{TotalAnswered: 47, BestStreak: 12}},
		&fakeFeedSource{feed: feedOf(5)},
	)

	resp, err := svc.Aggregate("token")
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if resp.User.ID != "usr_1" || resp.QuizStats.TotalAnswered != 47 {
		t.Fatalf("composite = %+v", resp)
	}
	if len(resp.RecentPosts) != shared.DashboardRecentPosts {
		t.Fatalf("recent posts = %d, want %d", len(resp.RecentPosts), shared.DashboardRecentPosts)
	}
	if resp.DailyChallenge.Title == "" || resp.DailyChallenge.Total != 3 {
		t.Fatalf("daily challenge = %+v", resp.DailyChallenge)
	}
}

func TestAggregateKeepsShortFeeds(t *testing.T) {
	svc := newDashboardService(
		&fakeProfileSource{profile: &dto.UserProfileResponse{ID: "usr_1"}},
		&fakeQuizSource{stats: &dto.QuizStatsResponse{}},
		&fakeFeedSource{feed: feedOf(2)},
	)

	resp, err := svc.Aggregate("token")
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(resp.RecentPosts) != 2 {
		t.Fatalf("recent posts = %d, want all 2", len(resp.RecentPosts))
	}
}

func TestAggregateIsAllOrNothing(t *testing.T) {
	boom := errors.New("quiz backend down")

	cases := []struct {
		name  string
		users *fakeProfileSource
		quiz  *fakeQuizSource
		feed  *fakeFeedSource
	}{
		{
			name:  "profile fails",
			users: &fakeProfileSource{err: boom},
			quiz:  &fakeQuizSource{stats: &dto.QuizStatsResponse{}},
			feed:  &fakeFeedSource{feed: feedOf(5)},
		},
		{
			name:  "stats fail",
			users: &fakeProfileSource{profile: &dto.UserProfileResponse{ID: "usr_1"}},
			quiz:  &fakeQuizSource{err: boom},
			feed:  &fakeFeedSource{feed: feedOf(5)},
		},
		{
			name:  "feed fails",
			users: &fakeProfileSource{profile: &dto.UserProfileResponse{ID: "usr_1"}},
			quiz:  &fakeQuizSource{stats: &dto.QuizStatsResponse{}},
			feed:  &fakeFeedSource{err: boom},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newDashboardService(tc.users, tc.quiz, tc.feed)

			resp, err := svc.Aggregate("token")
			if !errors.Is(err, boom) {
				t.Fatalf("expected the sub-call error verbatim, got %v", err)
			}
			if resp != nil {
				t.Fatal("no partial composite on failure")
			}
		})
	}
}
