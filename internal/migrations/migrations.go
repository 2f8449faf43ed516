package migrations

import (
	"fmt"
	"log"

	"github.com/linskybing/workflow-go/internal/repository"
	"gorm.io/gorm"
)

// Run creates or updates every table owned by the service.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	// Notes and activities are always read back per record, newest first.
	for _, stmt := range []string{
		"CREATE INDEX IF NOT EXISTS idx_activity_entity_created ON activities (entity_type, entity_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_note_entity_created ON notes (entity_type, entity_id, created_at DESC)",
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	log.Println("Database migrated")
	return nil
}
