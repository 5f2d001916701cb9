package service

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	notificationModel "campuscash_backend/internals/features/notifications/model"
	taskModel "campuscash_backend/internals/features/tasks/model"
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

	// Pin to one connection so the session-level search_path sticks.
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
		&notificationModel.NotificationModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, year string) *userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserName:          "Test Student",
		UserEmail:         fmt.Sprintf("student-%d@campus.test", time.Now().UnixNano()),
		UserRole:          "user",
		UserYearClassDept: year,
		UserIsActive:      true,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedTask(t *testing.T, db *gorm.DB, points int, years []string) *taskModel.TaskModel {
	t.Helper()
	task := taskModel.TaskModel{
		TaskTitle:         "Library volunteering",
		TaskDueDate:       time.Now().Add(48 * time.Hour),
		TaskPoints:        points,
		TaskCategory:      taskModel.CategoryGeneral,
		TaskAssignedYears: pq.StringArray(years),
	}
	require.NoError(t, db.Create(&task).Error)
	return &task
}

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	require.NoError(t, err)
	return id
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected fiber error, got %v", err)
	return fe.Code
}

func TestAwardTaskCreditsOnce(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "3rd Year CS")
	task := seedTask(t, db, 50, []string{"3rd Year"})

	award, err := AwardTask(db, task.TaskID, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, 50, award.TaskAwardPoints)

	var fresh userModel.UserModel
	require.NoError(t, db.First(&fresh, "user_id = ?", user.UserID).Error)
	assert.Equal(t, 50, fresh.UserPoints)

	// Second award for the same pair must not credit again.
	_, err = AwardTask(db, task.TaskID, user.UserID)
	assert.Equal(t, fiber.StatusConflict, fiberStatus(t, err))

	require.NoError(t, db.First(&fresh, "user_id = ?", user.UserID).Error)
	assert.Equal(t, 50, fresh.UserPoints)

	var ledger int64
	require.NoError(t, db.Model(&taskModel.TaskAwardModel{}).
		Where("task_award_task_id = ?", task.TaskID).
		Count(&ledger).Error)
	assert.EqualValues(t, 1, ledger)
}

func TestAwardTaskNotifies(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "2nd Year")
	task := seedTask(t, db, 30, nil)

	_, err := AwardTask(db, task.TaskID, user.UserID)
	require.NoError(t, err)

	var n notificationModel.NotificationModel
	require.NoError(t, db.First(&n, "notification_user_id = ?", user.UserID).Error)
	assert.Equal(t, "Points awarded", n.NotificationTitle)
	assert.False(t, n.NotificationIsRead)
}

func TestAwardTaskIneligibleYear(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "Year 2")
	task := seedTask(t, db, 50, []string{"3rd Year"})

	_, err := AwardTask(db, task.TaskID, user.UserID)
	assert.Equal(t, fiber.StatusForbidden, fiberStatus(t, err))

	var fresh userModel.UserModel
	require.NoError(t, db.First(&fresh, "user_id = ?", user.UserID).Error)
	assert.Equal(t, 0, fresh.UserPoints)
}

func TestAwardTaskInactiveUser(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "3rd Year")
	require.NoError(t, db.Model(user).UpdateColumn("user_is_active", false).Error)
	task := seedTask(t, db, 50, nil)

	_, err := AwardTask(db, task.TaskID, user.UserID)
	assert.Equal(t, fiber.StatusForbidden, fiberStatus(t, err))
}

func TestAwardTaskMissingRows(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "3rd Year")
	task := seedTask(t, db, 50, nil)

	_, err := AwardTask(db, task.TaskID, newUUID(t))
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))

	_, err = AwardTask(db, newUUID(t), user.UserID)
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))
}
