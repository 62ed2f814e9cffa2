package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	questionSeeder := NewQuestionSeeder(s.db)
	if err := questionSeeder.SeedQuestions(); err != nil {
		log.Printf("Question seeding failed: %v", err)
		return err
	}

	postSeeder := NewPostSeeder(s.db)
	if err := postSeeder.SeedPosts(); err != nil {
		log.Printf("Post seeding failed: %v", err)
		return err
	}

	planSeeder := NewPlanSeeder(s.db)
	if err := planSeeder.SeedPlans(); err != nil {
		log.Printf("Plan seeding failed: %v", err)
		return err
	}

	userSeeder := NewUserSeeder(s.db)
	if err := userSeeder.SeedDemoUser(); err != nil {
		log.Printf("User seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedQuestionsOnly seeds only the quiz catalog
func (s *MainSeeder) SeedQuestionsOnly() error {
	return NewQuestionSeeder(s.db).SeedQuestions()
}

// SeedPostsOnly seeds only the community catalog
func (s *MainSeeder) SeedPostsOnly() error {
	return NewPostSeeder(s.db).SeedPosts()
}

// SeedPlansOnly seeds only the subscription catalog
func (s *MainSeeder) SeedPlansOnly() error {
	return NewPlanSeeder(s.db).SeedPlans()
}
