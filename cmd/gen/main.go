// Command gen generates type-safe query helpers for the persistence models.
package main

import (
	"plantcare/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.PlantModel{},
		model.TaskModel{},
		model.BadgeModel{},
		model.UserBadgeModel{},
		model.NotificationModel{},
		model.PlantAnalysisModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
