package migrations

import (
	"plantcare/internal/infra/persistence/model"

	"gorm.io/gorm"
)

func init() {
	Register("0001_initial_schema", upInitialSchema, downInitialSchema)
}

func upInitialSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserModel{},
		&model.PlantModel{},
		&model.TaskModel{},
		&model.BadgeModel{},
		&model.UserBadgeModel{},
		&model.NotificationModel{},
		&model.PlantAnalysisModel{},
	)
}

func downInitialSchema(db *gorm.DB) error {
	// Reverse order so dependents go first.
	return db.Migrator().DropTable(
		&model.PlantAnalysisModel{},
		&model.NotificationModel{},
		&model.UserBadgeModel{},
		&model.BadgeModel{},
		&model.TaskModel{},
		&model.PlantModel{},
		&model.UserModel{},
	)
}
