package dto

type QuizQuestionResponse struct {
	ID             string   `json:"id" example:"q1"`
	VideoURL       string   `json:"videoUrl"`
	ThumbnailEmoji string   `json:"thumbnailEmoji" example:"🎬"`
	Options        []string `json:"options"`
	CorrectIndex   int      `json:"correctIndex" example:"1"`
	Explanation    string   `json:"explanation"`
	Difficulty     string   `json:"difficulty" example:"easy"`
}

type QuizSubmitRequest struct {
	QuestionID    string `json:"questionId" validate:"required" example:"q1"`
	SelectedIndex int    `json:"selectedIndex" validate:"gte=0" example:"1"`
}

func (q QuizSubmitRequest) Validate() error {
	return GetValidator().Struct(q)
}

type QuizSubmitResponse struct {
	Correct     bool   `json:"correct" example:"true"`
	XPEarned    int    `json:"xpEarned" example:"100"`
	CoinsEarned int    `json:"coinsEarned" example:"25"`
	Explanation string `json:"explanation"`
	StreakCount int    `json:"streakCount" example:"3"`
}

type QuizStatsResponse struct {
	TotalAnswered int     `json:"totalAnswered" example:"47"`
	CorrectRate   float64 `json:"correctRate" example:"0.78"`
	CurrentStreak int     `json:"currentStreak" example:"3"`
	BestStreak    int     `json:"bestStreak" example:"12"`
	Lives         int     `json:"lives" example:"2"`
}
