package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TorgrimRL/Git-Internals/pkg/object"
	"github.com/TorgrimRL/Git-Internals/pkg/repo"
)

func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log [branch]",
		Short: "Show first-parent history from a branch head",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			ref := "HEAD"
			if len(args) == 1 {
				ref = args[0]
			}
			start, err := r.ResolveRef(ref)
			if err != nil {
				return fmt.Errorf("cannot resolve %q: %w", ref, err)
			}

			entries, err := r.Log(start, limit)
			if err != nil {
				return err
			}

			cfg, err := r.DisplayConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				if e.Merged {
					fmt.Fprintf(out, "commit %s (merged)\n", e.ID.Short(cfg.ShortIDLen))
				} else {
					fmt.Fprintf(out, "commit %s\n", e.ID.Short(cfg.ShortIDLen))
				}
				fmt.Fprintln(out, object.FormatCommit(e.Commit, cfg.TimeLayout))
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of mainline commits to show (0 = all)")

	return cmd
}
