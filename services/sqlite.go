package services

import (
	"errors"
	"os"
	"strings"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pawfiler/deepfind_api/model"
	"github.com/pawfiler/deepfind_api/shared"
)

// SqliteService owns the backing catalogs (questions, posts, plans) and the
// session-owned user rows. Despite the name it can also run against postgres
// when DB_DRIVER=postgres, mirroring how the deploy target differs from dev.
type SqliteService struct {
	context.DefaultService
	db *gorm.DB

	driver   string
	database string
}

const SQLITE_SVC = "sqlite_svc"

// Id returns Service ID
func (ds SqliteService) Id() string {
	return SQLITE_SVC
}

// Db Access to raw SqliteService db
func (ds SqliteService) Db() *gorm.DB {
	return ds.db
}

// Configure the service
func (ds *SqliteService) Configure(ctx *context.Context) error {
	ds.driver = os.Getenv("DB_DRIVER")
	ds.database = os.Getenv("DB_DATABASE")
	if ds.database == "" {
		ds.database = "deepfind.db"
	}

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *SqliteService) Start() error {
	if err := ds.open(); err != nil {
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *SqliteService) open() (err error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	switch ds.driver {
	case "postgres":
		ds.db, err = gorm.Open(postgres.Open(ds.database), cfg)
	default:
		ds.db, err = gorm.Open(sqlite.Open(ds.database), cfg)
	}
	if err != nil {
		return err
	}

	models := []interface{}{
		&model.User{},
		&model.Question{},
		&model.QuizStat{},
		&model.QuizAnswer{},
		&model.Post{},
		&model.Plan{},
		&model.Transaction{},
	}

	if err = ds.db.AutoMigrate(models...); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	return nil
}

func (ds *SqliteService) Shutdown() {
}

func (ds *SqliteService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *shared.AppError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		appErr = shared.ErrNotFound("Record not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		appErr = shared.ErrOperationFailed("Duplicate record")
	default:
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			appErr = shared.ErrOperationFailed("Duplicate record")
		} else {
			appErr = shared.ErrOperationFailed(err.Error())
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": appErr.StatusCode,
		"error_type":  appErr.ErrorType,
		"error":       err.Error(),
	})

	if appErr.StatusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return appErr
}

// ==================== USERS ====================

func (ds *SqliteService) CreateUser(user *model.User) (*model.User, error) {
	if err := ds.db.Create(user).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return user, nil
}

func (ds *SqliteService) GetUser(id string) (*model.User, error) {
	var user model.User
	if err := ds.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &user, nil
}

func (ds *SqliteService) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := ds.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &user, nil
}

func (ds *SqliteService) UpdateUser(user *model.User) error {
	if err := ds.db.Save(user).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== QUIZ ====================

func (ds *SqliteService) CreateQuestion(q *model.Question) error {
	if err := ds.db.Create(q).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *SqliteService) GetQuestion(id string) (*model.Question, error) {
	var q model.Question
	if err := ds.db.First(&q, "id = ?", id).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &q, nil
}

func (ds *SqliteService) GetRandomQuestion(difficulty string) (*model.Question, error) {
	var q model.Question
	tx := ds.db.Model(&model.Question{})
	if difficulty != "" {
		tx = tx.Where("difficulty = ?", difficulty)
	}
	if err := tx.Order("RANDOM()").First(&q).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &q, nil
}

func (ds *SqliteService) CountQuestions() (int64, error) {
	var count int64
	if err := ds.db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return 0, ds.HandleError(err)
	}
	return count, nil
}

func (ds *SqliteService) GetQuizStat(userID string) (*model.QuizStat, error) {
	var stat model.QuizStat
	if err := ds.db.First(&stat, "user_id = ?", userID).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &stat, nil
}

func (ds *SqliteService) SaveQuizStat(stat *model.QuizStat) error {
	if err := ds.db.Save(stat).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *SqliteService) CreateQuizAnswer(answer *model.QuizAnswer) error {
	if err := ds.db.Create(answer).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== COMMUNITY ====================

// GetFeedPage returns one page of posts, newest first, together with the
// catalog-wide total so pagination consumers can tell when they are done.
func (ds *SqliteService) GetFeedPage(page, pageSize int) ([]model.Post, int64, error) {
	var total int64
	if err := ds.db.Model(&model.Post{}).Count(&total).Error; err != nil {
		return nil, 0, ds.HandleError(err)
	}

	var posts []model.Post
	offset := (page - 1) * pageSize
	err := ds.db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&posts).Error
	if err != nil {
		return nil, 0, ds.HandleError(err)
	}

	return posts, total, nil
}

func (ds *SqliteService) CreatePost(post *model.Post) (*model.Post, error) {
	if err := ds.db.Create(post).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return post, nil
}

func (ds *SqliteService) GetPost(id string) (*model.Post, error) {
	var post model.Post
	if err := ds.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &post, nil
}

func (ds *SqliteService) UpdatePost(post *model.Post) error {
	if err := ds.db.Save(post).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *SqliteService) DeletePost(id string) error {
	if err := ds.db.Delete(&model.Post{}, "id = ?", id).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

// ==================== PAYMENT ====================

func (ds *SqliteService) GetPlans() ([]model.Plan, error) {
	var plans []model.Plan
	if err := ds.db.Order("price ASC").Find(&plans).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return plans, nil
}

func (ds *SqliteService) GetPlan(id string) (*model.Plan, error) {
	var plan model.Plan
	if err := ds.db.First(&plan, "id = ?", id).Error; err != nil {
		return nil, ds.HandleError(err)
	}
	return &plan, nil
}

func (ds *SqliteService) CreatePlan(plan *model.Plan) error {
	if err := ds.db.Create(plan).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}

func (ds *SqliteService) CreateTransaction(txn *model.Transaction) error {
	if err := ds.db.Create(txn).Error; err != nil {
		return ds.HandleError(err)
	}
	return nil
}
