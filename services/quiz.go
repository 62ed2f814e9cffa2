package services

import (
	"encoding/json"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pawfiler/deepfind_api/dto"
	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/shared"
)

type QuizService struct {
	context.DefaultService

	jwtSvc     *JWTService
	sqlSvc     *SqliteService
	latencySvc *LatencyService
	kafkaSvc   *KafkaService
}

const QUIZ_SVC = "quiz_svc"

const defaultLives = 3

func (svc QuizService) Id() string {
	return QUIZ_SVC
}

func (svc *QuizService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *QuizService) Start() error {
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.latencySvc = svc.Service(LATENCY_SVC).(*LatencyService)
	svc.kafkaSvc = svc.Service(KAFKA_SVC).(*KafkaService)
	return nil
}

func (svc *QuizService) GetQuestion(token, difficulty string) (*dto.QuizQuestionResponse, error) {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return nil, err
	}

	svc.latencySvc.DelayMs(500, 800)

	question, err := svc.sqlSvc.GetRandomQuestion(difficulty)
	if err != nil {
		return nil, err
	}

	return questionResponse(question), nil
}

// SubmitAnswer grades the answer and applies rewards. An unknown question id
// degrades to an incorrect answer with the participation reward instead of
// failing the call.
func (svc *QuizService) SubmitAnswer(token string, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error) {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return nil, err
	}

	claims, err := svc.jwtSvc.VerifyJWTToken(token)
	if err != nil {
		return nil, shared.ErrUnauthenticated("Invalid JWT token")
	}

	svc.latencySvc.DelayMs(400, 700)

	correct := false
	explanation := ""

	question, err := svc.sqlSvc.GetQuestion(req.QuestionID)
	if err != nil && !shared.IsErrorType(err, shared.ErrTypeNotFound) {
		return nil, err
	}
	if question != nil {
		correct = req.SelectedIndex == question.CorrectIndex
		explanation = question.Explanation
	}

	xpEarned := shared.XPRewardIncorrect
	coinsEarned := shared.CoinRewardIncorrect
	if correct {
		xpEarned = shared.XPRewardCorrect
		coinsEarned = shared.CoinRewardCorrect
	}

	answerID, _ := uuid.NewV7()
	answer := &model.QuizAnswer{
		ID:            answerID.String(),
		UserID:        claims.UserID,
		QuestionID:    req.QuestionID,
		SelectedIndex: req.SelectedIndex,
		IsCorrect:     correct,
		XPEarned:      xpEarned,
		CoinsEarned:   coinsEarned,
		CreatedAt:     time.Now(),
	}
	if err := svc.sqlSvc.CreateQuizAnswer(answer); err != nil {
		return nil, err
	}

	stat, err := svc.updateStats(claims.UserID, correct)
	if err != nil {
		return nil, err
	}

	if err := svc.applyRewards(claims.UserID, xpEarned, coinsEarned); err != nil {
		log.WithError(err).WithField(shared.UserID, claims.UserID).Error("Failed to apply quiz rewards")
	}

	svc.kafkaSvc.Emit("quiz.answered", map[string]interface{}{
		"user_id":      claims.UserID,
		"question_id":  req.QuestionID,
		"correct":      correct,
		"xp_earned":    xpEarned,
		"coins_earned": coinsEarned,
	})

	return &dto.QuizSubmitResponse{
		Correct:     correct,
		XPEarned:    xpEarned,
		CoinsEarned: coinsEarned,
		Explanation: explanation,
		StreakCount: stat.CurrentStreak,
	}, nil
}

func (svc *QuizService) GetStats(token string) (*dto.QuizStatsResponse, error) {
	if _, err := svc.jwtSvc.WithAuth(token); err != nil {
		return nil, err
	}

	claims, err := svc.jwtSvc.VerifyJWTToken(token)
	if err != nil {
		return nil, shared.ErrUnauthenticated("Invalid JWT token")
	}

	svc.latencySvc.DelayMs(300, 500)

	stat, err := svc.sqlSvc.GetQuizStat(claims.UserID)
	if err != nil {
		if shared.IsErrorType(err, shared.ErrTypeNotFound) {
			return &dto.QuizStatsResponse{Lives: defaultLives}, nil
		}
		return nil, err
	}

	correctRate := 0.0
	if stat.TotalAnswered > 0 {
		correctRate = float64(stat.CorrectCount) / float64(stat.TotalAnswered)
	}

	return &dto.QuizStatsResponse{
		TotalAnswered: stat.TotalAnswered,
		CorrectRate:   correctRate,
		CurrentStreak: stat.CurrentStreak,
		BestStreak:    stat.BestStreak,
		Lives:         stat.Lives,
	}, nil
}

func (svc *QuizService) updateStats(userID string, correct bool) (*model.QuizStat, error) {
	stat, err := svc.sqlSvc.GetQuizStat(userID)
	if err != nil {
		if !shared.IsErrorType(err, shared.ErrTypeNotFound) {
			return nil, err
		}
		stat = &model.QuizStat{
			UserID:    userID,
			Lives:     defaultLives,
			CreatedAt: time.Now(),
		}
	}

	stat.TotalAnswered++
	if correct {
		stat.CorrectCount++
		stat.CurrentStreak++
		if stat.CurrentStreak > stat.BestStreak {
			stat.BestStreak = stat.CurrentStreak
		}
	} else {
		stat.CurrentStreak = 0
		if stat.Lives > 0 {
			stat.Lives--
		}
	}
	stat.UpdatedAt = time.Now()

	if err := svc.sqlSvc.SaveQuizStat(stat); err != nil {
		return nil, err
	}

	return stat, nil
}

func (svc *QuizService) applyRewards(userID string, xp, coins int) error {
	user, err := svc.sqlSvc.GetUser(userID)
	if err != nil {
		return err
	}

	user.XP += xp
	user.Coins += coins
	user.UpdatedAt = time.Now()

	return svc.sqlSvc.UpdateUser(user)
}

func questionResponse(q *model.Question) *dto.QuizQuestionResponse {
	var options []string
	if len(q.Options) > 0 {
		if err := json.Unmarshal(q.Options, &options); err != nil {
			log.WithError(err).WithField("question_id", q.ID).Warn("Malformed question options")
		}
	}

	return &dto.QuizQuestionResponse{
		ID:             q.ID,
		VideoURL:       q.VideoURL,
		ThumbnailEmoji: q.ThumbnailEmoji,
		Options:        options,
		CorrectIndex:   q.CorrectIndex,
		Explanation:    q.Explanation,
		Difficulty:     q.Difficulty,
	}
}
