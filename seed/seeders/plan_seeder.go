package seeders

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/pawfiler/deepfind_api/model"
)

// PlanSeeder handles seeding the subscription plan catalog
type PlanSeeder struct {
	db *gorm.DB
}

func NewPlanSeeder(db *gorm.DB) *PlanSeeder {
	return &PlanSeeder{db: db}
}

// SeedPlans seeds the database with the subscription catalog
func (s *PlanSeeder) SeedPlans() error {
	plans := s.getPlans()

	for _, plan := range plans {
		var existing model.Plan
		if err := s.db.Where("id = ?", plan.ID).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := s.db.Create(&plan).Error; err != nil {
					log.Printf("Error creating plan %s: %v", plan.ID, err)
					return err
				}
				log.Printf("Created plan: %s", plan.Name)
			} else {
				log.Printf("Error checking plan %s: %v", plan.ID, err)
				return err
			}
		} else {
			log.Printf("Plan %s already exists, skipping", plan.ID)
		}
	}

	log.Println("Plan seeding completed successfully")
	return nil
}

func (s *PlanSeeder) getPlans() []model.Plan {
	now := time.Now()

	return []model.Plan{
		{
			ID:       "monthly",
			Name:     "월간 프리미엄",
			Price:    4900,
			Currency: "KRW",
			Features: jsonArray([]string{
				"무제한 분석",
				"광고 제거",
				"프리미엄 뱃지",
				"우선 분석 큐",
			}),
			DurationDays: 30,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:       "yearly",
			Name:     "연간 프리미엄",
			Price:    39000,
			Currency: "KRW",
			Features: jsonArray([]string{
				"무제한 분석",
				"광고 제거",
				"프리미엄 뱃지",
				"우선 분석 큐",
				"보너스 코인 500닢",
			}),
			DurationDays: 365,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}
