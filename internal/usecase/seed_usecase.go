package usecase

import "context"

// SeedOutput counts what a seeding run inserted.
type SeedOutput struct {
	BadgesCreated int  `json:"badges_created"`
	DemoCreated   bool `json:"demo_created"`
}

// SeedUsecase loads reference and demo data. Every run is idempotent.
type SeedUsecase interface {
	// SeedCatalog inserts catalog badges missing by name.
	SeedCatalog(ctx context.Context) (int, error)

	// SeedDemoData creates the demo account and its garden unless it already exists.
	// Data is written directly and does not run award rules.
	SeedDemoData(ctx context.Context) (bool, error)

	// Run applies the seeds enabled in configuration.
	Run(ctx context.Context) (*SeedOutput, error)
}
