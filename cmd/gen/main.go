package main

import (
	"ignite/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the tables the reminder service reads.
func main() {
	models := []any{
		model.PushSubscriptionModel{},
		model.WorkoutModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
