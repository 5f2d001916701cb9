package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CategoryGeneral      = "General"
	CategoryQuiz         = "Quiz"
	CategoryVolunteering = "Volunteering"
	CategoryEvent        = "Event"

	DefaultPassingScore = 70
)

// QuizQuestion is one entry of the ordered quiz definition stored in
// task_quiz (jsonb).
type QuizQuestion struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

type TaskModel struct {
	TaskID          uuid.UUID `gorm:"column:task_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"task_id"`
	TaskTitle       string    `gorm:"column:task_title;type:varchar(180);not null"                  json:"task_title"`
	TaskDescription *string   `gorm:"column:task_description"                                       json:"task_description,omitempty"`
	TaskDueDate     time.Time `gorm:"column:task_due_date;not null"                                 json:"task_due_date"`
	TaskPoints      int       `gorm:"column:task_points;not null;check:task_points >= 0"            json:"task_points"`
	TaskCategory    string    `gorm:"column:task_category;type:varchar(30);not null;default:'General'" json:"task_category"`

	// Free-text cohort tags; empty (or containing "all") means every year.
	TaskAssignedYears pq.StringArray `gorm:"column:task_assigned_years;type:text[]" json:"task_assigned_years"`

	TaskQuiz             datatypes.JSON `gorm:"column:task_quiz;type:jsonb"                       json:"task_quiz,omitempty"`
	TaskQuizPassingScore int            `gorm:"column:task_quiz_passing_score;not null;default:70" json:"task_quiz_passing_score"`

	TaskCreatedBy uuid.UUID      `gorm:"column:task_created_by;type:uuid"                json:"task_created_by"`
	TaskCreatedAt time.Time      `gorm:"column:task_created_at;not null;autoCreateTime"  json:"task_created_at"`
	TaskUpdatedAt time.Time      `gorm:"column:task_updated_at;not null;autoUpdateTime"  json:"task_updated_at"`
	TaskDeletedAt gorm.DeletedAt `gorm:"column:task_deleted_at;index"                    json:"task_deleted_at,omitempty"`
}

// TableName overrides the table name used by GORM.
func (TaskModel) TableName() string {
	return "tasks"
}

func (m *TaskModel) HasQuiz() bool {
	return len(m.TaskQuiz) > 0 && string(m.TaskQuiz) != "null"
}

// QuizQuestions decodes the stored quiz definition.
func (m *TaskModel) QuizQuestions() ([]QuizQuestion, error) {
	if !m.HasQuiz() {
		return nil, nil
	}
	var qs []QuizQuestion
	if err := json.Unmarshal(m.TaskQuiz, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// PassingScore falls back to the default threshold when unset.
func (m *TaskModel) PassingScore() int {
	if m.TaskQuizPassingScore <= 0 {
		return DefaultPassingScore
	}
	return m.TaskQuizPassingScore
}
