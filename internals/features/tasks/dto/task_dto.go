package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"campuscash_backend/internals/features/tasks/model"
	"campuscash_backend/internals/features/tasks/service"
	userDto "campuscash_backend/internals/features/users/user/dto"
)

type QuizQuestionRequest struct {
	Text         string   `json:"text" validate:"required"`
	Options      []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectIndex int      `json:"correct_index" validate:"gte=0"`
}

type CreateTaskRequest struct {
	TaskTitle            string                `json:"task_title" validate:"required,max=180"`
	TaskDescription      *string               `json:"task_description"`
	TaskDueDate          time.Time             `json:"task_due_date" validate:"required"`
	TaskPoints           int                   `json:"task_points" validate:"gte=0"`
	TaskCategory         string                `json:"task_category" validate:"omitempty,oneof=General Quiz Volunteering Event"`
	TaskAssignedYears    []string              `json:"task_assigned_years"`
	TaskQuiz             []QuizQuestionRequest `json:"task_quiz" validate:"omitempty,dive"`
	TaskQuizPassingScore int                   `json:"task_quiz_passing_score" validate:"gte=0,lte=100"`
}

func (r *CreateTaskRequest) ToModel(createdBy uuid.UUID) (*model.TaskModel, error) {
	m := &model.TaskModel{
		TaskTitle:         r.TaskTitle,
		TaskDescription:   r.TaskDescription,
		TaskDueDate:       r.TaskDueDate,
		TaskPoints:        r.TaskPoints,
		TaskCategory:      r.TaskCategory,
		TaskAssignedYears: r.TaskAssignedYears,
		TaskCreatedBy:     createdBy,
	}
	if m.TaskCategory == "" {
		m.TaskCategory = model.CategoryGeneral
	}
	if len(r.TaskQuiz) > 0 {
		questions := make([]model.QuizQuestion, 0, len(r.TaskQuiz))
		for _, q := range r.TaskQuiz {
			questions = append(questions, model.QuizQuestion{
				Text:         q.Text,
				Options:      q.Options,
				CorrectIndex: q.CorrectIndex,
			})
		}
		raw, err := json.Marshal(questions)
		if err != nil {
			return nil, err
		}
		m.TaskQuiz = datatypes.JSON(raw)
		m.TaskCategory = model.CategoryQuiz
	}
	m.TaskQuizPassingScore = r.TaskQuizPassingScore
	if m.TaskQuizPassingScore <= 0 {
		m.TaskQuizPassingScore = model.DefaultPassingScore
	}
	return m, nil
}

type UpdateTaskRequest struct {
	TaskTitle         *string    `json:"task_title" validate:"omitempty,max=180"`
	TaskDescription   *string    `json:"task_description"`
	TaskDueDate       *time.Time `json:"task_due_date"`
	TaskPoints        *int       `json:"task_points" validate:"omitempty,gte=0"`
	TaskCategory      *string    `json:"task_category" validate:"omitempty,oneof=General Quiz Volunteering Event"`
	TaskAssignedYears []string   `json:"task_assigned_years"`
}

func (r *UpdateTaskRequest) ApplyToModel(m *model.TaskModel) {
	if r.TaskTitle != nil {
		m.TaskTitle = *r.TaskTitle
	}
	if r.TaskDescription != nil {
		m.TaskDescription = r.TaskDescription
	}
	if r.TaskDueDate != nil {
		m.TaskDueDate = *r.TaskDueDate
	}
	if r.TaskPoints != nil {
		m.TaskPoints = *r.TaskPoints
	}
	if r.TaskCategory != nil {
		m.TaskCategory = *r.TaskCategory
	}
	if r.TaskAssignedYears != nil {
		m.TaskAssignedYears = r.TaskAssignedYears
	}
}

// TaskResponse hides the correct answers: quiz questions are exposed without
// correct_index to students.
type QuizQuestionPublic struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type TaskResponse struct {
	TaskID               uuid.UUID            `json:"task_id"`
	TaskTitle            string               `json:"task_title"`
	TaskDescription      *string              `json:"task_description,omitempty"`
	TaskDueDate          time.Time            `json:"task_due_date"`
	TaskPoints           int                  `json:"task_points"`
	TaskCategory         string               `json:"task_category"`
	TaskAssignedYears    []string             `json:"task_assigned_years"`
	TaskQuiz             []QuizQuestionPublic `json:"task_quiz,omitempty"`
	TaskQuizPassingScore int                  `json:"task_quiz_passing_score"`
	TaskCreatedAt        time.Time            `json:"task_created_at"`
}

func FromModelTask(m *model.TaskModel) TaskResponse {
	resp := TaskResponse{
		TaskID:               m.TaskID,
		TaskTitle:            m.TaskTitle,
		TaskDescription:      m.TaskDescription,
		TaskDueDate:          m.TaskDueDate,
		TaskPoints:           m.TaskPoints,
		TaskCategory:         m.TaskCategory,
		TaskAssignedYears:    m.TaskAssignedYears,
		TaskQuizPassingScore: m.PassingScore(),
		TaskCreatedAt:        m.TaskCreatedAt,
	}
	if qs, err := m.QuizQuestions(); err == nil {
		for _, q := range qs {
			resp.TaskQuiz = append(resp.TaskQuiz, QuizQuestionPublic{Text: q.Text, Options: q.Options})
		}
	}
	return resp
}

func FromModelsTasks(rows []*model.TaskModel) []TaskResponse {
	out := make([]TaskResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModelTask(m))
	}
	return out
}

type CandidateResponse struct {
	User    userDto.UserResponse `json:"user"`
	Awarded bool                 `json:"awarded"`
}

func FromCandidates(rows []service.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(rows))
	for _, cand := range rows {
		out = append(out, CandidateResponse{
			User:    userDto.FromModel(cand.User),
			Awarded: cand.Awarded,
		})
	}
	return out
}

type AwardRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}
