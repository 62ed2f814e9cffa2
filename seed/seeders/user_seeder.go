package seeders

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/shared"
)

// UserSeeder handles seeding the demo detective account
type UserSeeder struct {
	db *gorm.DB
}

func NewUserSeeder(db *gorm.DB) *UserSeeder {
	return &UserSeeder{db: db}
}

// SeedDemoUser creates the baseline detective account used for demos
func (s *UserSeeder) SeedDemoUser() error {
	var existing model.User
	if err := s.db.Where("email = ?", "detective@deepfind.io").First(&existing).Error; err == nil {
		log.Println("Demo user already exists, skipping user seeding")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("detective123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	createdAt, _ := time.Parse(time.RFC3339, "2025-09-15T00:00:00Z")

	user := model.User{
		ID:               "usr_fox_001",
		Email:            "detective@deepfind.io",
		PasswordHash:     string(hash),
		Nickname:         "날쌘 여우 탐정",
		AvatarEmoji:      "🦊",
		SubscriptionType: shared.SubscriptionFree,
		Coins:            1200,
		Level:            5,
		LevelTitle:       "전문가",
		XP:               3400,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}

	if err := s.db.Create(&user).Error; err != nil {
		log.Printf("Error creating demo user: %v", err)
		return err
	}

	log.Printf("Created demo user: %s (password: detective123)", user.Email)
	return nil
}
