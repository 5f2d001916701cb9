package tasks

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"campuscash_backend/internals/features/tasks/model"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TaskSeed struct {
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	DueInDays     int                  `json:"due_in_days"`
	Points        int                  `json:"points"`
	Category      string               `json:"category"`
	AssignedYears []string             `json:"assigned_years"`
	Quiz          []model.QuizQuestion `json:"quiz"`
	PassingScore  int                  `json:"passing_score"`
}

func SeedTasksFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading task seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []TaskSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, data := range inputs {
		var existing model.TaskModel
		if err := db.Where("task_title = ?", data.Title).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Task '%s' already exists, skipped.", data.Title)
			continue
		}

		task := model.TaskModel{
			TaskTitle:         data.Title,
			TaskDueDate:       time.Now().AddDate(0, 0, data.DueInDays),
			TaskPoints:        data.Points,
			TaskCategory:      data.Category,
			TaskAssignedYears: pq.StringArray(data.AssignedYears),
		}
		if data.Description != "" {
			desc := data.Description
			task.TaskDescription = &desc
		}
		if len(data.Quiz) > 0 {
			raw, err := json.Marshal(data.Quiz)
			if err != nil {
				log.Printf("❌ Failed to encode quiz for '%s': %v", data.Title, err)
				continue
			}
			task.TaskQuiz = datatypes.JSON(raw)
			task.TaskCategory = model.CategoryQuiz
			if data.PassingScore > 0 {
				task.TaskQuizPassingScore = data.PassingScore
			} else {
				task.TaskQuizPassingScore = model.DefaultPassingScore
			}
		}

		if err := db.Create(&task).Error; err != nil {
			log.Printf("❌ Failed to insert task '%s': %v", data.Title, err)
		} else {
			log.Printf("✅ Inserted task '%s'", data.Title)
		}
	}
}
