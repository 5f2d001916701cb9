package events

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"campuscash_backend/internals/features/events/model"

	"gorm.io/gorm"
)

type EventSeed struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	StartsInDays int    `json:"starts_in_days"`
	DurationHrs  int    `json:"duration_hours"`
}

func SeedEventsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading event seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []EventSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed file: %v", err)
	}

	for _, data := range inputs {
		var existing model.EventModel
		if err := db.Where("event_title = ?", data.Title).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Event '%s' already exists, skipped.", data.Title)
			continue
		}

		starts := time.Now().AddDate(0, 0, data.StartsInDays)
		ends := starts.Add(time.Duration(data.DurationHrs) * time.Hour)
		event := model.EventModel{
			EventTitle:       data.Title,
			EventDescription: data.Description,
			EventLocation:    data.Location,
			EventStartsAt:    starts,
			EventEndsAt:      &ends,
		}

		if err := db.Create(&event).Error; err != nil {
			log.Printf("❌ Failed to insert event '%s': %v", data.Title, err)
		} else {
			log.Printf("✅ Inserted event '%s'", data.Title)
		}
	}
}
