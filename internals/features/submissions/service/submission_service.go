package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	smodel "campuscash_backend/internals/features/submissions/model"
	taskModel "campuscash_backend/internals/features/tasks/model"
	taskService "campuscash_backend/internals/features/tasks/service"
)

// CreateInput is the normalized submission payload (JSON or multipart).
type CreateInput struct {
	Type    string
	Text    string
	Link    string
	FileURL string
	Answers []int
}

// Create writes a new submission for (task, user). Quiz submissions are
// graded synchronously and enter a terminal state directly; a passing quiz
// triggers the ledger-guarded credit in the same transaction.
func Create(db *gorm.DB, taskID, userID uuid.UUID, in CreateInput) (*smodel.SubmissionModel, error) {
	if !smodel.ValidType(in.Type) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid submission type (file|link|text|quiz)")
	}

	var task taskModel.TaskModel
	if err := db.First(&task, "task_id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Task not found")
		}
		return nil, err
	}

	sub := smodel.SubmissionModel{
		SubmissionTaskID: taskID,
		SubmissionUserID: userID,
		SubmissionType:   in.Type,
		SubmissionStatus: smodel.StatusPending,
	}

	switch in.Type {
	case smodel.TypeText:
		if strings.TrimSpace(in.Text) == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "text is required for a text submission")
		}
		sub.SubmissionText = &in.Text
	case smodel.TypeLink:
		if strings.TrimSpace(in.Link) == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "link is required for a link submission")
		}
		sub.SubmissionLink = &in.Link
	case smodel.TypeFile:
		if strings.TrimSpace(in.FileURL) == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "file is required for a file submission")
		}
		sub.SubmissionFileURL = &in.FileURL
	case smodel.TypeQuiz:
		if !task.HasQuiz() {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Task has no quiz")
		}
		questions, err := task.QuizQuestions()
		if err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Corrupt quiz definition")
		}
		score, passed, err := GradeQuiz(questions, in.Answers, task.PassingScore())
		if err != nil {
			if errors.Is(err, ErrInvalidAnswerCount) {
				return nil, fiber.NewError(fiber.StatusBadRequest, "Answer count does not match question count")
			}
			return nil, err
		}
		raw, err := json.Marshal(in.Answers)
		if err != nil {
			return nil, err
		}
		sub.SubmissionAnswers = datatypes.JSON(raw)
		sub.SubmissionScore = &score
		sub.SubmissionPassed = &passed
		if passed {
			sub.SubmissionStatus = smodel.StatusAccepted
		} else {
			sub.SubmissionStatus = smodel.StatusRejected
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return fiber.NewError(fiber.StatusConflict, "You have already submitted this task")
			}
			return err
		}
		if sub.SubmissionStatus == smodel.StatusAccepted {
			credited, err := taskService.CreditAward(tx, &task, userID)
			if err != nil {
				return err
			}
			if credited {
				taskService.NotifyAward(tx, userID, task.TaskTitle, task.TaskPoints)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Approve transitions a submission to accepted and credits the student
// through the award ledger. Re-approving an accepted submission is a 409;
// approving a rejected one is the administrative override path and is
// allowed.
func Approve(db *gorm.DB, submissionID uuid.UUID, adminComment string) (*smodel.SubmissionModel, error) {
	var sub smodel.SubmissionModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "submission_id = ?", submissionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Submission not found")
			}
			return err
		}
		if sub.SubmissionStatus == smodel.StatusAccepted {
			return fiber.NewError(fiber.StatusConflict, "Submission already accepted")
		}

		var task taskModel.TaskModel
		if err := tx.First(&task, "task_id = ?", sub.SubmissionTaskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Task not found")
			}
			return err
		}

		sub.SubmissionStatus = smodel.StatusAccepted
		if strings.TrimSpace(adminComment) != "" {
			sub.SubmissionAdminComment = &adminComment
		}
		if err := tx.Save(&sub).Error; err != nil {
			return err
		}

		// Ledger-guarded: a pair already credited (e.g. via direct award)
		// is approved without a second credit.
		credited, err := taskService.CreditAward(tx, &task, sub.SubmissionUserID)
		if err != nil {
			return err
		}
		if credited {
			taskService.NotifyAward(tx, sub.SubmissionUserID, task.TaskTitle, task.TaskPoints)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Reject transitions a submission to rejected. Never touches points.
// Re-rejecting is harmless; rejecting an accepted submission is a 409.
func Reject(db *gorm.DB, submissionID uuid.UUID, adminComment string) (*smodel.SubmissionModel, error) {
	var sub smodel.SubmissionModel
	if err := db.First(&sub, "submission_id = ?", submissionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Submission not found")
		}
		return nil, err
	}
	if sub.SubmissionStatus == smodel.StatusAccepted {
		return nil, fiber.NewError(fiber.StatusConflict, "Submission already accepted")
	}

	sub.SubmissionStatus = smodel.StatusRejected
	if strings.TrimSpace(adminComment) != "" {
		sub.SubmissionAdminComment = &adminComment
	}
	if err := db.Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}
