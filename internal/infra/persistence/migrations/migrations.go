// Package migrations keeps an ordered registry of schema changes and applies
// the ones a database has not seen yet.
package migrations

import (
	"log/slog"
	"sort"

	"plantcare/internal/errors"

	"gorm.io/gorm"
)

// Migration is one registered schema step.
type Migration struct {
	ID   string
	Up   func(*gorm.DB) error
	Down func(*gorm.DB) error
}

// Record marks a migration as applied.
type Record struct {
	ID        string `gorm:"primaryKey;type:varchar(128)"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (Record) TableName() string {
	return "schema_migrations"
}

var registry = make(map[string]Migration)

// Register adds a migration. IDs sort lexically, so prefix them with a sequence number.
func Register(id string, up, down func(*gorm.DB) error) {
	if _, exists := registry[id]; exists {
		panic("migrations: duplicate id " + id)
	}

	registry[id] = Migration{ID: id, Up: up, Down: down}
}

func sortedIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Pending lists registered migrations not yet recorded in db, in apply order.
func Pending(db *gorm.DB) ([]string, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, errors.Wrap(err, "failed to create migrations table")
	}

	var applied []Record
	if err := db.Find(&applied).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load applied migrations")
	}

	done := make(map[string]struct{}, len(applied))
	for _, record := range applied {
		done[record.ID] = struct{}{}
	}

	var pending []string
	for _, id := range sortedIDs() {
		if _, ok := done[id]; !ok {
			pending = append(pending, id)
		}
	}

	return pending, nil
}

// Run applies every pending migration in order. Each step and its record are
// written in one transaction.
func Run(db *gorm.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	pending, err := Pending(db)
	if err != nil {
		return err
	}

	for _, id := range pending {
		migration := registry[id]
		logger.Info("Running migration", slog.String("id", id))

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}

			return tx.Create(&Record{ID: id}).Error
		})
		if err != nil {
			return errors.Wrapf(err, "failed to run migration %s", id)
		}
	}

	if len(pending) > 0 {
		logger.Info("Migrations applied", slog.Int("count", len(pending)))
	}

	return nil
}

// Rollback reverts the most recently applied migration. It returns the reverted
// id, or an empty string when nothing has been applied.
func Rollback(db *gorm.DB, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return "", errors.Wrap(err, "failed to create migrations table")
	}

	var last Record
	result := db.Order("id DESC").Limit(1).Find(&last)
	if result.Error != nil {
		return "", errors.Wrap(result.Error, "failed to load last migration")
	}
	if result.RowsAffected == 0 {
		return "", nil
	}

	migration, ok := registry[last.ID]
	if !ok || migration.Down == nil {
		return "", errors.Errorf("migration %s cannot be rolled back", last.ID)
	}

	logger.Info("Rolling back migration", slog.String("id", last.ID))

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := migration.Down(tx); err != nil {
			return err
		}

		return tx.Delete(&Record{ID: last.ID}).Error
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to roll back migration %s", last.ID)
	}

	return last.ID, nil
}
