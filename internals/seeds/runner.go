package seeds

import (
	events "campuscash_backend/internals/seeds/events"
	tasks "campuscash_backend/internals/seeds/tasks"
	users "campuscash_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds loads the demo fixtures. Intended for fresh local databases;
// every seeder skips rows that already exist.
func RunAllSeeds(db *gorm.DB) {
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
	tasks.SeedTasksFromJSON(db, "internals/seeds/tasks/data_tasks.json")
	events.SeedEventsFromJSON(db, "internals/seeds/events/data_events.json")
}
