package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/seed/seeders"
)

// resolveDatabasePath picks the sqlite file the same way the server does:
// DB_DATABASE, falling back to the default database file.
func resolveDatabasePath(override string) string {
	if override != "" {
		return override
	}
	if path := os.Getenv("DB_DATABASE"); path != "" {
		return path
	}
	return "deepfind.db"
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, questions, posts, plans")
		dbPath   = flag.String("db", "", "Database path (overrides DB_DATABASE env var)")
	)
	flag.Parse()

	databasePath := resolveDatabasePath(*dbPath)

	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Printf("Connected to database: %s", databasePath)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.QuizStat{},
		&model.QuizAnswer{},
		&model.Post{},
		&model.Plan{},
		&model.Transaction{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		err = mainSeeder.SeedAll()
	case "questions":
		log.Println("Seeding questions only...")
		err = mainSeeder.SeedQuestionsOnly()
	case "posts":
		log.Println("Seeding posts only...")
		err = mainSeeder.SeedPostsOnly()
	case "plans":
		log.Println("Seeding plans only...")
		err = mainSeeder.SeedPlansOnly()
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'questions', 'posts', or 'plans'", *seedType)
	}

	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding operation completed successfully!")
}
