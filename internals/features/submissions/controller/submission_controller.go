package controller

import (
	"encoding/json"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sdto "campuscash_backend/internals/features/submissions/dto"
	smodel "campuscash_backend/internals/features/submissions/model"
	sservice "campuscash_backend/internals/features/submissions/service"
	helper "campuscash_backend/internals/helpers"
)

type SubmissionController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{DB: db}
}

func (ctl *SubmissionController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /api/u/tasks/:id/submit (JSON or multipart)
func (ctl *SubmissionController) Submit(c *fiber.Ctx) error {
	ctl.ensureValidator()

	taskID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	in, err := ctl.parseInput(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	sub, err := sservice.Create(ctl.DB, taskID, userID, *in)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Submission created", sdto.FromModel(sub))
}

func (ctl *SubmissionController) parseInput(c *fiber.Ctx) (*sservice.CreateInput, error) {
	contentType := string(c.Request().Header.ContentType())

	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		in := sservice.CreateInput{
			Type: strings.TrimSpace(c.FormValue("type")),
			Text: strings.TrimSpace(c.FormValue("text")),
			Link: strings.TrimSpace(c.FormValue("link")),
		}
		if answersRaw := strings.TrimSpace(c.FormValue("answers")); answersRaw != "" {
			if err := json.Unmarshal([]byte(answersRaw), &in.Answers); err != nil {
				return nil, fiber.NewError(fiber.StatusBadRequest, "answers must be a JSON array of option indices")
			}
		}
		if fileHeader, err := c.FormFile("file"); err == nil {
			url, err := helper.SaveUploadedFile(c, "submissions", fileHeader)
			if err != nil {
				return nil, err
			}
			in.FileURL = url
		}
		return &in, nil
	}

	var req sdto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Validation failed")
	}
	return &sservice.CreateInput{
		Type:    req.Type,
		Text:    req.Text,
		Link:    req.Link,
		Answers: req.Answers,
	}, nil
}

// GET /api/u/submissions/my
func (ctl *SubmissionController) MySubmissions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []*smodel.SubmissionModel
	if err := ctl.DB.
		Where("submission_user_id = ?", userID).
		Order("submission_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	return helper.JsonList(c, "ok", sdto.FromModels(rows), nil)
}

// GET /api/a/submissions?status=&task_id=
func (ctl *SubmissionController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&smodel.SubmissionModel{})

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if status != smodel.StatusPending && status != smodel.StatusAccepted && status != smodel.StatusRejected {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status (pending|accepted|rejected)")
		}
		q = q.Where("submission_status = ?", status)
	}
	if taskIDStr := strings.TrimSpace(c.Query("task_id")); taskIDStr != "" {
		taskID, err := uuid.Parse(taskIDStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task_id")
		}
		q = q.Where("submission_task_id = ?", taskID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	var rows []*smodel.SubmissionModel
	if err := q.Order("submission_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	return helper.JsonList(c, "ok", sdto.FromModels(rows), helper.BuildMeta(total, p))
}

// GET /api/a/tasks/:id/submissions
func (ctl *SubmissionController) ByTask(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	var rows []*smodel.SubmissionModel
	if err := ctl.DB.
		Where("submission_task_id = ?", taskID).
		Order("submission_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	return helper.JsonList(c, "ok", sdto.FromModels(rows), nil)
}

// PUT /api/a/submissions/:id/approve {admin_comment}
func (ctl *SubmissionController) Approve(c *fiber.Ctx) error {
	return ctl.review(c, true)
}

// PUT /api/a/submissions/:id/reject {admin_comment}
func (ctl *SubmissionController) Reject(c *fiber.Ctx) error {
	return ctl.review(c, false)
}

func (ctl *SubmissionController) review(c *fiber.Ctx, approve bool) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	var req sdto.ReviewRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		if err := ctl.validator.Struct(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
		}
	}

	var sub *smodel.SubmissionModel
	if approve {
		sub, err = sservice.Approve(ctl.DB, id, req.AdminComment)
	} else {
		sub, err = sservice.Reject(ctl.DB, id, req.AdminComment)
	}
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Submission rejected"
	if approve {
		msg = "Submission approved"
	}
	return helper.JsonUpdated(c, msg, sdto.FromModel(sub))
}
