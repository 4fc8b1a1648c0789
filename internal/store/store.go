package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"jobdeck/internal/config"
	"jobdeck/pkg/models"
)

// migrationManifest lists every persisted entity up front; stores are never
// discovered lazily at call time.
var migrationManifest = []interface{}{
	&models.Job{},
	&models.Event{},
	&models.Task{},
	&models.Note{},
	&models.Contact{},
	&models.Document{},
}

// Open connects to postgres and migrates the full entity manifest
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(migrationManifest...); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Stores bundles one repository per entity, constructed once at startup and
// injected into the services that need them.
type Stores struct {
	Jobs      *JobStore
	Events    *EventStore
	Tasks     *TaskStore
	Notes     *NoteStore
	Contacts  *ContactStore
	Documents *DocumentStore
}

// NewStores builds the repository bundle over a shared connection
func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		Jobs:      NewJobStore(db),
		Events:    NewEventStore(db),
		Tasks:     NewTaskStore(db),
		Notes:     NewNoteStore(db),
		Contacts:  NewContactStore(db),
		Documents: NewDocumentStore(db),
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
