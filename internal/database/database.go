package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hunlearn/lang-portal/internal/entities"
)

// allEntities lists every model managed by AutoMigrate. Order matters
// for FullReset: tables are dropped in reverse so foreign keys resolve.
var allEntities = []any{
	&entities.Word{},
	&entities.Group{},
	&entities.StudyActivity{},
	&entities.StudySession{},
	&entities.WordReviewItem{},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) migrate() error {
	return d.DB.AutoMigrate(allEntities...)
}

// ResetHistory deletes every study session and review item while
// keeping words and groups intact. Runs in a single transaction so a
// failure leaves history untouched.
func (d *Database) ResetHistory() error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM word_review_items").Error; err != nil {
			return fmt.Errorf("failed to delete review items: %w", err)
		}
		if err := tx.Exec("DELETE FROM study_sessions").Error; err != nil {
			return fmt.Errorf("failed to delete study sessions: %w", err)
		}
		return nil
	})
}

// FullReset drops the entire schema and recreates it empty.
func (d *Database) FullReset() error {
	migrator := d.DB.Migrator()
	for i := len(allEntities) - 1; i >= 0; i-- {
		if err := migrator.DropTable(allEntities[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	// The join table is not a model of its own.
	if migrator.HasTable("words_groups") {
		if err := migrator.DropTable("words_groups"); err != nil {
			return fmt.Errorf("failed to drop join table: %w", err)
		}
	}
	return d.migrate()
}
