package shared

const (
	UserID = "user_id"

	SubscriptionFree    = "free"
	SubscriptionPremium = "premium"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	LogInfo    = "info"
	LogSuccess = "success"
	LogWarning = "warning"
	LogError   = "error"

	StageIdle       = "IDLE"
	StageUploading  = "UPLOADING"
	StageConnecting = "MCP_CONNECTING"
	StageProcessing = "SAGEMAKER_PROCESSING"
	StageCompleted  = "COMPLETED"
	StageError      = "ERROR"

	VerdictReal      = "real"
	VerdictFake      = "fake"
	VerdictUncertain = "uncertain"

	XPRewardCorrect     = 100
	XPRewardIncorrect   = 10
	CoinRewardCorrect   = 25
	CoinRewardIncorrect = 5

	DefaultFeedPageSize  = 5
	DashboardRecentPosts = 3
)
