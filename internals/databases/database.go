package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campuscash_backend/internals/configs"
	contactModel "campuscash_backend/internals/features/contacts/model"
	couponModel "campuscash_backend/internals/features/coupons/model"
	eventModel "campuscash_backend/internals/features/events/model"
	notificationModel "campuscash_backend/internals/features/notifications/model"
	submissionModel "campuscash_backend/internals/features/submissions/model"
	taskModel "campuscash_backend/internals/features/tasks/model"
	authModel "campuscash_backend/internals/features/users/auth/model"
	userModel "campuscash_backend/internals/features/users/user/model"
	volunteerModel "campuscash_backend/internals/features/volunteers/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=campuscash&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // works with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync on boot. No migration framework is
// carried; AutoMigrate plus the unique indexes declared on the models.
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&taskModel.TaskModel{},
		&taskModel.TaskAwardModel{},
		&submissionModel.SubmissionModel{},
		&couponModel.CouponModel{},
		&eventModel.EventModel{},
		&volunteerModel.VolunteerModel{},
		&notificationModel.NotificationModel{},
		&contactModel.ContactModel{},
	)
	if err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ schema migrated.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
