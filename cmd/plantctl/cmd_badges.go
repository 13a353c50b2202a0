package main

import (
	"fmt"
	"text/tabwriter"

	"plantcare/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List the badge catalog",
	RunE:  runBadges,
}

func runBadges(cmd *cobra.Command, _ []string) error {
	env, closeFn, err := openStore()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, cancel := commandContext(cmd)
	defer cancel()

	badges, err := postgres.NewRepositoryFactory(env.db).BadgeRepo().FindAll(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tREQUIREMENT\tBONUS")
	for _, badge := range badges {
		fmt.Fprintf(w, "%d\t%s\t%s >= %d\t%d\n",
			badge.ID, badge.Name, badge.Requirement.Kind, badge.Requirement.Threshold, badge.BonusPoints)
	}

	return w.Flush()
}
