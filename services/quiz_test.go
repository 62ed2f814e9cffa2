package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/shared"
)

func newQuizService(t *testing.T) (*QuizService, *SqliteService, string) {
	t.Helper()

	ds := newTestDB(t)
	jwtSvc := newTestJWT()
	svc := &QuizService{
		jwtSvc:     jwtSvc,
		sqlSvc:     ds,
		latencySvc: newTestLatency(),
	}

	user := seedTestUser(t, ds)
	token := mintToken(t, jwtSvc, user)

	options, _ := json.Marshal([]string{
		"입 모양이 어색해요",
		"눈 깜빡임이 없어요",
		"머리카락이 흔들려요",
		"목소리가 달라요",
	})
	q := &model.Question{
		ID:           "q1",
		Options:      options,
		CorrectIndex: 1,
		Explanation:  "딥페이크 영상에서는 눈 깜빡임이 부자연스러운 경우가 많아요!",
		Difficulty:   shared.DifficultyEasy,
		CreatedAt:    time.Now(),
	}
	if err := ds.CreateQuestion(q); err != nil {
		t.Fatalf("seed question: %v", err)
	}

	return svc, ds, token
}

func TestGetQuestionRequiresToken(t *testing.T) {
	svc, _, _ := newQuizService(t)

	if _, err := svc.GetQuestion("", ""); !shared.IsErrorType(err, shared.ErrTypeUnauthenticated) {
		t.Fatalf("expected UNAUTHENTICATED, got %v", err)
	}
}

func TestGetQuestionHonorsDifficultyFilter(t *testing.T) {
	svc, _, token := newQuizService(t)

	q, err := svc.GetQuestion(token, shared.DifficultyEasy)
	if err != nil {
		t.Fatalf("get question: %v", err)
	}
	if q.Difficulty != shared.DifficultyEasy {
		t.Fatalf("difficulty = %q", q.Difficulty)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}

	if _, err := svc.GetQuestion(token, shared.DifficultyHard); !shared.IsErrorType(err, shared.ErrTypeNotFound) {
		t.Fatalf("expected NOT_FOUND for an empty difficulty bucket, got %v", err)
	}
}

func TestSubmitCorrectAnswer(t *testing.T) {
	svc, ds, token := newQuizService(t)

	resp, err := svc.SubmitAnswer(token, dto.QuizSubmitRequest{QuestionID: "q1", SelectedIndex: 1})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if !resp.Correct {
		t.Fatal("expected correct verdict")
	}
	if resp.XPEarned != shared.XPRewardCorrect || resp.CoinsEarned != shared.CoinRewardCorrect {
		t.Fatalf("rewards = %d xp / %d coins", resp.XPEarned, resp.CoinsEarned)
	}
	if resp.Explanation == "" {
		t.Fatal("expected the question explanation")
	}
	if resp.StreakCount != 1 {
		t.Fatalf("streak = %d, want 1", resp.StreakCount)
	}

	// Rewards land on the user row.
	user, err := ds.GetUser("usr_test_001")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.XP != 3400+shared.XPRewardCorrect || user.Coins != 1200+shared.CoinRewardCorrect {
		t.Fatalf("user totals = %d xp / %d coins", user.XP, user.Coins)
	}
}

func TestSubmitIncorrectAnswer(t *testing.T) {
	svc, _, token := newQuizService(t)

	// Build a streak first, then break it.
	if _, err := svc.SubmitAnswer(token, dto.QuizSubmitRequest{QuestionID: "q1", SelectedIndex: 1}); err != nil {
		t.Fatalf("correct submit: %v", err)
	}

	resp, err := svc.SubmitAnswer(token, dto.QuizSubmitRequest{QuestionID: "q1", SelectedIndex: 0})
	if err != nil {
		t.Fatalf("incorrect submit: %v", err)
	}
	if resp.Correct {
		t.Fatal("expected incorrect verdict")
	}
	if resp.XPEarned != shared.XPRewardIncorrect || resp.CoinsEarned != shared.CoinRewardIncorrect {
		t.Fatalf("rewards = %d xp / %d coins", resp.XPEarned, resp.CoinsEarned)
	}
	if resp.StreakCount != 0 {
		t.Fatalf("streak = %d, want 0 after a miss", resp.StreakCount)
	}

	stats, err := svc.GetStats(token)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalAnswered != 2 || stats.BestStreak != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.Lives != defaultLives-1 {
		t.Fatalf("lives = %d, want %d", stats.Lives, defaultLives-1)
	}
}

func TestSubmitUnknownQuestionDegrades(t *testing.T) {
	svc, _, token := newQuizService(t)

	resp, err := svc.SubmitAnswer(token, dto.QuizSubmitRequest{QuestionID: "q404", SelectedIndex: 2})
	if err != nil {
		t.Fatalf("unknown question must not error: %v", err)
	}
	if resp.Correct {
		t.Fatal("unknown question grades as incorrect")
	}
	if resp.CoinsEarned != shared.CoinRewardIncorrect {
		t.Fatalf("coins = %d, want the participation reward", resp.CoinsEarned)
	}
	if resp.XPEarned != shared.XPRewardIncorrect {
		t.Fatalf("xp = %d", resp.XPEarned)
	}
	if resp.Explanation != "" {
		t.Fatalf("explanation = %q, want empty", resp.Explanation)
	}
}

func TestGetStatsBeforeAnyAnswer(t *testing.T) {
	svc, _, token := newQuizService(t)

	stats, err := svc.GetStats(token)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalAnswered != 0 || stats.CorrectRate != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
	if stats.Lives != defaultLives {
		t.Fatalf("lives = %d, want full %d", stats.Lives, defaultLives)
	}
}

func TestCorrectRateComputation(t *testing.T) {
	svc, _, token := newQuizService(t)

	submits := []int{1, 1, 0, 1} // three correct, one miss
	for _, idx := range submits {
		if _, err := svc.SubmitAnswer(token, dto.QuizSubmitRequest{QuestionID: "q1", SelectedIndex: idx}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	stats, err := svc.GetStats(token)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalAnswered != 4 {
		t.Fatalf("answered = %d", stats.TotalAnswered)
	}
	if stats.CorrectRate != 0.75 {
		t.Fatalf("correct rate = %v, want 0.75", stats.CorrectRate)
	}
}
