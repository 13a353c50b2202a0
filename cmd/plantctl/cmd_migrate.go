package main

import (
	"fmt"

	"plantcare/internal/infra/persistence/migrations"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage schema migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	RunE:  runMigrateUp,
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE:  runMigrateDown,
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List pending migrations",
	RunE:  runMigrateStatus,
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	env, closeFn, err := openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := commandContext(cmd)
	defer cancel()

	return migrations.Run(env.db.WithContext(ctx), env.logger)
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	env, closeFn, err := openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := commandContext(cmd)
	defer cancel()

	id, err := migrations.Rollback(env.db.WithContext(ctx), env.logger)
	if err != nil {
		return err
	}
	if id == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to roll back")

		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s\n", id)

	return nil
}

func runMigrateStatus(cmd *cobra.Command, _ []string) error {
	env, closeFn, err := openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := commandContext(cmd)
	defer cancel()

	pending, err := migrations.Pending(env.db.WithContext(ctx))
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")

		return nil
	}
	for _, id := range pending {
		fmt.Fprintf(cmd.OutOrStdout(), "pending %s\n", id)
	}

	return nil
}
