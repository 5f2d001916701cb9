package service

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	notificationModel "campuscash_backend/internals/features/notifications/model"
	taskModel "campuscash_backend/internals/features/tasks/model"
	userModel "campuscash_backend/internals/features/users/user/model"
)

// CreditAward appends to the award ledger and credits the user's points as
// one unit of work inside the caller's transaction. The ledger insert uses
// ON CONFLICT DO NOTHING on the unique (task, user) index; the credit only
// happens when a row was actually inserted, so concurrent calls cannot
// double-credit. Returns false when the pair was already in the ledger.
func CreditAward(tx *gorm.DB, task *taskModel.TaskModel, userID uuid.UUID) (bool, error) {
	award := taskModel.TaskAwardModel{
		TaskAwardTaskID: task.TaskID,
		TaskAwardUserID: userID,
		TaskAwardPoints: task.TaskPoints,
	}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "task_award_task_id"}, {Name: "task_award_user_id"}},
		DoNothing: true,
	}).Create(&award)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	if err := tx.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		UpdateColumn("user_points", gorm.Expr("user_points + ?", task.TaskPoints)).Error; err != nil {
		return false, err
	}
	return true, nil
}

// AwardTask is the direct staff award path: validates task/user existence,
// eligibility against the task's assigned years, then performs the
// transactional credit. 409 when the pair is already in the ledger.
func AwardTask(db *gorm.DB, taskID, userID uuid.UUID) (*taskModel.TaskAwardModel, error) {
	var awarded taskModel.TaskAwardModel

	err := db.Transaction(func(tx *gorm.DB) error {
		var task taskModel.TaskModel
		if err := tx.First(&task, "task_id = ?", taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Task not found")
			}
			return err
		}

		var user userModel.UserModel
		if err := tx.First(&user, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "User not found")
			}
			return err
		}
		if !user.UserIsActive {
			return fiber.NewError(fiber.StatusForbidden, "User is inactive")
		}

		if !IsCandidate(task.TaskAssignedYears, user.UserYearClassDept) {
			return fiber.NewError(fiber.StatusForbidden, "User is not eligible for this task")
		}

		credited, err := CreditAward(tx, &task, userID)
		if err != nil {
			return err
		}
		if !credited {
			return fiber.NewError(fiber.StatusConflict, "Task already awarded to this user")
		}

		if err := tx.First(&awarded,
			"task_award_task_id = ? AND task_award_user_id = ?", taskID, userID).Error; err != nil {
			return err
		}

		NotifyAward(tx, userID, task.TaskTitle, task.TaskPoints)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &awarded, nil
}

// NotifyAward drops a best-effort notification row; failures are swallowed
// so they never break the credit path.
func NotifyAward(db *gorm.DB, userID uuid.UUID, taskTitle string, points int) {
	n := notificationModel.NotificationModel{
		NotificationUserID: userID,
		NotificationTitle:  "Points awarded",
		NotificationBody:   "You earned " + strconv.Itoa(points) + " points for \"" + taskTitle + "\".",
	}
	_ = db.Create(&n).Error
}
