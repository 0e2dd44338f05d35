package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TorgrimRL/Git-Internals/pkg/repo"
)

func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "branch",
		Short: "List branches with their head commits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			branches, err := r.ListBranches()
			if err != nil {
				return err
			}

			cfg, err := r.DisplayConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, b := range branches {
				marker := " "
				if b.Current {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s %s\n", marker, b.Head.Short(cfg.ShortIDLen), b.Name)
			}
			return nil
		},
	}
}
