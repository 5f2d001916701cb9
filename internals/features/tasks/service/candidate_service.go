package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	taskModel "campuscash_backend/internals/features/tasks/model"
	userModel "campuscash_backend/internals/features/users/user/model"
)

// Candidate is a user eligible for a task, annotated with whether the
// ledger already holds an award for them.
type Candidate struct {
	User    *userModel.UserModel
	Awarded bool
}

// CandidatesForTask resolves the active users whose cohort field matches
// the task's assigned years. Matching runs in-process so the listing filter
// and this resolver share one pattern-building scheme.
func CandidatesForTask(db *gorm.DB, taskID uuid.UUID) ([]Candidate, error) {
	var task taskModel.TaskModel
	if err := db.First(&task, "task_id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Task not found")
		}
		return nil, err
	}

	rx, matchAll, err := BuildYearPattern(task.TaskAssignedYears)
	if err != nil {
		return nil, err
	}

	var users []*userModel.UserModel
	if err := db.
		Where("user_is_active = TRUE AND user_role = ?", "user").
		Order("user_name ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}

	awardedSet, err := awardedUserSet(db, taskID)
	if err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(users))
	for _, u := range users {
		if !matchAll && !rx.MatchString(u.UserYearClassDept) {
			continue
		}
		_, awarded := awardedSet[u.UserID]
		out = append(out, Candidate{User: u, Awarded: awarded})
	}
	return out, nil
}

func awardedUserSet(db *gorm.DB, taskID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	if err := db.Model(&taskModel.TaskAwardModel{}).
		Where("task_award_task_id = ?", taskID).
		Pluck("task_award_user_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}
