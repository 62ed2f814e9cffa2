package seeders

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/shared"
)

// QuestionSeeder handles seeding the quiz question catalog
type QuestionSeeder struct {
	db *gorm.DB
}

func NewQuestionSeeder(db *gorm.DB) *QuestionSeeder {
	return &QuestionSeeder{db: db}
}

// SeedQuestions seeds the database with the detection quiz catalog
func (s *QuestionSeeder) SeedQuestions() error {
	questions := s.getQuestions()

	for _, question := range questions {
		var existing model.Question
		if err := s.db.Where("id = ?", question.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&question).Error; err != nil {
					log.Printf("Error creating question %s: %v", question.ID, err)
					return err
				}
				log.Printf("Created question: %s", question.ID)
			} else {
				log.Printf("Error checking question %s: %v", question.ID, err)
				return err
			}
		} else {
			log.Printf("Question %s already exists, skipping", question.ID)
		}
	}

	log.Println("Question seeding completed successfully")
	return nil
}

func (s *QuestionSeeder) getQuestions() []model.Question {
	now := time.Now()

	return []model.Question{
		{
			ID:             "q1",
			VideoURL:       "",
			ThumbnailEmoji: "🎬",
			Options: jsonArray([]string{
				"입 모양이 어색해요",
				"눈 깜빡임이 없어요",
				"머리카락이 흔들려요",
				"목소리가 달라요",
			}),
			CorrectIndex: 1,
			Explanation:  "딥페이크 영상에서는 눈 깜빡임이 부자연스러운 경우가 많아요!",
			Difficulty:   shared.DifficultyEasy,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:             "q2",
			VideoURL:       "",
			ThumbnailEmoji: "🎥",
			Options: jsonArray([]string{
				"배경이 자연스러워요",
				"얼굴 경계가 번져요",
				"음성이 정확해요",
				"조명이 일치해요",
			}),
			CorrectIndex: 1,
			Explanation:  "얼굴 합성 경계 부분이 번지거나 흐릿한 건 딥페이크의 대표 특징이에요!",
			Difficulty:   shared.DifficultyMedium,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

func jsonArray(values []string) json.RawMessage {
	raw, _ := json.Marshal(values)
	return raw
}
