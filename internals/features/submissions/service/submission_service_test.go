package service

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	notificationModel "campuscash_backend/internals/features/notifications/model"
	smodel "campuscash_backend/internals/features/submissions/model"
	taskModel "campuscash_backend/internals/features/tasks/model"
	taskService "campuscash_backend/internals/features/tasks/service"
	userModel "campuscash_backend/internals/features/users/user/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	schema := fmt.Sprintf("test_%d", time.Now().UnixNano())
	require.NoError(t, db.Exec("CREATE SCHEMA "+schema).Error)
	require.NoError(t, db.Exec("SET search_path TO "+schema).Error)
	t.Cleanup(func() {
		_ = db.Exec("DROP SCHEMA " + schema + " CASCADE").Error
		_ = sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&taskModel.TaskModel{},
		&taskModel.TaskAwardModel{},
		&smodel.SubmissionModel{},
		&notificationModel.NotificationModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName:          "Test Student",
		UserEmail:         fmt.Sprintf("student-%d@campus.test", time.Now().UnixNano()),
		UserRole:          "user",
		UserYearClassDept: "3rd Year",
		UserIsActive:      true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedTask(t *testing.T, db *gorm.DB, points int) *taskModel.TaskModel {
	t.Helper()
	task := taskModel.TaskModel{
		TaskTitle:    "Write a report",
		TaskDueDate:  time.Now().Add(48 * time.Hour),
		TaskPoints:   points,
		TaskCategory: taskModel.CategoryGeneral,
	}
	require.NoError(t, db.Create(&task).Error)
	return &task
}

func userPoints(t *testing.T, db *gorm.DB, u *userModel.UserModel) int {
	t.Helper()
	var fresh userModel.UserModel
	require.NoError(t, db.First(&fresh, "user_id = ?", u.UserID).Error)
	return fresh.UserPoints
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected fiber error, got %v", err)
	return fe.Code
}

func TestCreateRejectsDuplicate(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	task := seedTask(t, db, 40)

	_, err := Create(db, task.TaskID, user.UserID, CreateInput{Type: smodel.TypeText, Text: "done"})
	require.NoError(t, err)

	_, err = Create(db, task.TaskID, user.UserID, CreateInput{Type: smodel.TypeText, Text: "again"})
	assert.Equal(t, fiber.StatusConflict, fiberStatus(t, err))
}

func TestRejectNeverTouchesPoints(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	task := seedTask(t, db, 40)

	sub, err := Create(db, task.TaskID, user.UserID, CreateInput{Type: smodel.TypeText, Text: "done"})
	require.NoError(t, err)

	rejected, err := Reject(db, sub.SubmissionID, "not good enough")
	require.NoError(t, err)
	assert.Equal(t, smodel.StatusRejected, rejected.SubmissionStatus)
	assert.Equal(t, 0, userPoints(t, db, user))

	// Re-rejecting is harmless.
	_, err = Reject(db, sub.SubmissionID, "still no")
	require.NoError(t, err)
	assert.Equal(t, 0, userPoints(t, db, user))
}

func TestApproveCreditsOnce(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	task := seedTask(t, db, 40)

	sub, err := Create(db, task.TaskID, user.UserID, CreateInput{Type: smodel.TypeText, Text: "done"})
	require.NoError(t, err)

	approved, err := Approve(db, sub.SubmissionID, "looks good")
	require.NoError(t, err)
	assert.Equal(t, smodel.StatusAccepted, approved.SubmissionStatus)
	assert.Equal(t, 40, userPoints(t, db, user))

	_, err = Approve(db, sub.SubmissionID, "")
	assert.Equal(t, fiber.StatusConflict, fiberStatus(t, err))
	assert.Equal(t, 40, userPoints(t, db, user))
}

func TestApproveAfterRejectIsOverride(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	task := seedTask(t, db, 25)

	sub, err := Create(db, task.TaskID, user.UserID, CreateInput{Type: smodel.TypeText, Text: "done"})
	require.NoError(t, err)

	_, err = Reject(db, sub.SubmissionID, "no")
	require.NoError(t, err)

	approved, err := Approve(db, sub.SubmissionID, "on second thought")
	require.NoError(t, err)
	assert.Equal(t, smodel.StatusAccepted, approved.SubmissionStatus)
	assert.Equal(t, 25, userPoints(t, db, user))
}

func TestApproveAfterDirectAwardDoesNotDoubleCredit(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	task := seedTask(t, db, 40)

	sub, err := Create(db, task.TaskID, user.UserID, CreateInput{Type: smodel.TypeText, Text: "done"})
	require.NoError(t, err)

	_, err = taskService.AwardTask(db, task.TaskID, user.UserID)
	require.NoError(t, err)
	require.Equal(t, 40, userPoints(t, db, user))

	// Approval still flips the status, but the ledger guard skips the credit.
	approved, err := Approve(db, sub.SubmissionID, "")
	require.NoError(t, err)
	assert.Equal(t, smodel.StatusAccepted, approved.SubmissionStatus)
	assert.Equal(t, 40, userPoints(t, db, user))
}

func TestRejectAcceptedIsConflict(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	task := seedTask(t, db, 40)

	sub, err := Create(db, task.TaskID, user.UserID, CreateInput{Type: smodel.TypeText, Text: "done"})
	require.NoError(t, err)

	_, err = Approve(db, sub.SubmissionID, "")
	require.NoError(t, err)

	_, err = Reject(db, sub.SubmissionID, "too late")
	assert.Equal(t, fiber.StatusConflict, fiberStatus(t, err))
	assert.Equal(t, 40, userPoints(t, db, user))
}

func TestCreateQuizSelfGrades(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)

	quiz := datatypes.JSON([]byte(`[
		{"text":"Q1","options":["a","b"],"correct_index":0},
		{"text":"Q2","options":["a","b"],"correct_index":1},
		{"text":"Q3","options":["a","b","c"],"correct_index":2}
	]`))
	task := taskModel.TaskModel{
		TaskTitle:            "Pop quiz",
		TaskDueDate:          time.Now().Add(24 * time.Hour),
		TaskPoints:           60,
		TaskCategory:         taskModel.CategoryQuiz,
		TaskQuiz:             quiz,
		TaskQuizPassingScore: 70,
	}
	require.NoError(t, db.Create(&task).Error)

	sub, err := Create(db, task.TaskID, user.UserID, CreateInput{
		Type:    smodel.TypeQuiz,
		Answers: []int{0, 1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, smodel.StatusAccepted, sub.SubmissionStatus)
	require.NotNil(t, sub.SubmissionScore)
	assert.Equal(t, 100, *sub.SubmissionScore)
	assert.Equal(t, 60, userPoints(t, db, user))
}

func TestCreateQuizFailingScoreRejects(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)

	quiz := datatypes.JSON([]byte(`[
		{"text":"Q1","options":["a","b"],"correct_index":0},
		{"text":"Q2","options":["a","b"],"correct_index":1},
		{"text":"Q3","options":["a","b","c"],"correct_index":2}
	]`))
	task := taskModel.TaskModel{
		TaskTitle:            "Pop quiz",
		TaskDueDate:          time.Now().Add(24 * time.Hour),
		TaskPoints:           60,
		TaskCategory:         taskModel.CategoryQuiz,
		TaskQuiz:             quiz,
		TaskQuizPassingScore: 70,
	}
	require.NoError(t, db.Create(&task).Error)

	sub, err := Create(db, task.TaskID, user.UserID, CreateInput{
		Type:    smodel.TypeQuiz,
		Answers: []int{0, 1, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, smodel.StatusRejected, sub.SubmissionStatus)
	require.NotNil(t, sub.SubmissionScore)
	assert.Equal(t, 67, *sub.SubmissionScore)
	assert.Equal(t, 0, userPoints(t, db, user))
}

func TestCreateQuizAnswerCountMismatchWritesNothing(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)

	quiz := datatypes.JSON([]byte(`[
		{"text":"Q1","options":["a","b"],"correct_index":0},
		{"text":"Q2","options":["a","b"],"correct_index":1}
	]`))
	task := taskModel.TaskModel{
		TaskTitle:    "Short quiz",
		TaskDueDate:  time.Now().Add(24 * time.Hour),
		TaskPoints:   20,
		TaskCategory: taskModel.CategoryQuiz,
		TaskQuiz:     quiz,
	}
	require.NoError(t, db.Create(&task).Error)

	_, err := Create(db, task.TaskID, user.UserID, CreateInput{
		Type:    smodel.TypeQuiz,
		Answers: []int{0},
	})
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))

	var count int64
	require.NoError(t, db.Model(&smodel.SubmissionModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
