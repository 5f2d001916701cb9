package controller

import (
	"errors"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tdto "campuscash_backend/internals/features/tasks/dto"
	tmodel "campuscash_backend/internals/features/tasks/model"
	tservice "campuscash_backend/internals/features/tasks/service"
	helper "campuscash_backend/internals/helpers"
)

type TaskController struct {
	DB        *gorm.DB
	validator *validator.Validate
}

func NewTaskController(db *gorm.DB) *TaskController {
	return &TaskController{DB: db}
}

func (ctl *TaskController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /api/a/tasks
func (ctl *TaskController) Create(c *fiber.Ctx) error {
	ctl.ensureValidator()

	var req tdto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}
	for _, q := range req.TaskQuiz {
		if q.CorrectIndex >= len(q.Options) {
			return helper.JsonError(c, fiber.StatusBadRequest, "correct_index out of range for question options")
		}
	}

	createdBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	m, err := req.ToModel(createdBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz payload")
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create task")
	}
	return helper.JsonCreated(c, "Task created", tdto.FromModelTask(m))
}

// GET /api/a/tasks?category=
func (ctl *TaskController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&tmodel.TaskModel{})

	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		q = q.Where("task_category = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count tasks")
	}

	p := helper.ParseFiber(c, "due_date", "asc", helper.AdminOpts)
	order, _ := p.SafeOrderClause(map[string]string{
		"due_date":   "task_due_date",
		"created_at": "task_created_at",
		"points":     "task_points",
	}, "due_date")

	var rows []*tmodel.TaskModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tasks")
	}
	return helper.JsonList(c, "ok", tdto.FromModelsTasks(rows), helper.BuildMeta(total, p))
}

// GET /api/u/tasks/active?year=
// Lists tasks whose due date is in the future, optionally filtered to tasks
// the given cohort is eligible for. Filtering shares the candidate-matching
// pattern builder.
func (ctl *TaskController) ListActive(c *fiber.Ctx) error {
	var rows []*tmodel.TaskModel
	if err := ctl.DB.
		Where("task_due_date > ?", time.Now().UTC()).
		Order("task_due_date ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch tasks")
	}

	year := strings.TrimSpace(c.Query("year"))
	if year == "" {
		return helper.JsonList(c, "ok", tdto.FromModelsTasks(rows), nil)
	}

	filtered := make([]*tmodel.TaskModel, 0, len(rows))
	for _, t := range rows {
		if tservice.IsCandidate(t.TaskAssignedYears, year) {
			filtered = append(filtered, t)
		}
	}
	return helper.JsonList(c, "ok", tdto.FromModelsTasks(filtered), nil)
}

// GET /api/a/tasks/:id
func (ctl *TaskController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	var m tmodel.TaskModel
	if err := ctl.DB.First(&m, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch task")
	}
	return helper.JsonOK(c, "ok", tdto.FromModelTask(&m))
}

// PUT /api/a/tasks/:id
func (ctl *TaskController) Update(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	var m tmodel.TaskModel
	if err := ctl.DB.First(&m, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch task")
	}

	var req tdto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Validation failed")
	}

	req.ApplyToModel(&m)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update task")
	}
	return helper.JsonUpdated(c, "Task updated", tdto.FromModelTask(&m))
}

// DELETE /api/a/tasks/:id
func (ctl *TaskController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	res := ctl.DB.Delete(&tmodel.TaskModel{}, "task_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete task")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Task not found")
	}
	return helper.JsonDeleted(c, "Task deleted", fiber.Map{"deleted_id": id})
}

// GET /api/a/tasks/:id/candidates
func (ctl *TaskController) Candidates(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	candidates, err := tservice.CandidatesForTask(ctl.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", tdto.FromCandidates(candidates), nil)
}

// POST /api/a/tasks/:id/award {user_id}
func (ctl *TaskController) Award(c *fiber.Ctx) error {
	ctl.ensureValidator()

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid task id")
	}

	var req tdto.AwardRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id is required")
	}

	award, err := tservice.AwardTask(ctl.DB, id, req.UserID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Task awarded", award)
}
