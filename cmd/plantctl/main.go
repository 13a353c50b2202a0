// Command plantctl runs maintenance tasks against the plantcare store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"plantcare/config"
	logs "plantcare/internal/infra/log"
	"plantcare/internal/infra/persistence"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var timeout time.Duration

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "plantctl",
	Short: "Maintenance commands for the plantcare store",
	Long: `plantctl migrates the schema, seeds the badge catalog and demo garden,
and inspects the catalog. It reads the same config.yaml as the API server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Operation timeout")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(badgesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// storeEnv is the configuration, logger and open database shared by all commands.
type storeEnv struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func openStore() (*storeEnv, func(), error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	db, err := persistence.Open(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return &storeEnv{cfg: cfg, logger: logger, db: db}, closeFn, nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}
