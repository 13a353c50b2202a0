package main

import (
	"fmt"

	"plantcare/internal/infra/auth"
	"plantcare/internal/infra/persistence/postgres"
	"plantcare/internal/usecase"
	"plantcare/internal/usecase/engine"
	"plantcare/internal/usecase/impl"

	"github.com/spf13/cobra"
)

var seedDemo bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the badge catalog",
	Long: `Seed writes the six catalog badges that are missing. With --demo it also
creates the demo garden of user "plantlover" unless that user already exists.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedDemo, "demo", false, "Also create the demo user and garden")
}

func newSeeder(env *storeEnv) usecase.SeedUsecase {
	return impl.NewSeedService(impl.SeedServiceParams{
		TxManager: postgres.NewTransactionManager(env.db),
		Repos:     postgres.NewRepositoryFactory(env.db),
		Hasher:    auth.NewBcryptHasher(env.cfg),
		Engine:    engine.NewFromConfig(env.cfg),
		Config:    env.cfg,
		Logger:    env.logger,
	})
}

func runSeed(cmd *cobra.Command, _ []string) error {
	env, closeFn, err := openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := commandContext(cmd)
	defer cancel()

	seeder := newSeeder(env)

	created, err := seeder.SeedCatalog(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "badges created: %d\n", created)

	if !seedDemo {
		return nil
	}

	demoCreated, err := seeder.SeedDemoData(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "demo garden created: %t\n", demoCreated)

	return nil
}
