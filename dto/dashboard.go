package dto

type DailyChallenge struct {
	Title    string `json:"title" example:"가짜 영상 3번 찾기"`
	Progress int    `json:"progress" example:"1"`
	Total    int    `json:"total" example:"3"`
	Reward   int    `json:"reward" example:"50"`
}

// DashboardResponse is the BFF composite for the home screen. It is rebuilt
// on every fetch from three successful sub-fetches; there is no partial form.
type DashboardResponse struct {
	User           UserProfileResponse `json:"user"`
	QuizStats      QuizStatsResponse   `json:"quizStats"`
	RecentPosts    []CommunityPost     `json:"recentPosts"`
	DailyChallenge DailyChallenge      `json:"dailyChallenge"`
}
