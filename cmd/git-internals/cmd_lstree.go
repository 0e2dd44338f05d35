package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TorgrimRL/Git-Internals/pkg/object"
	"github.com/TorgrimRL/Git-Internals/pkg/repo"
)

func newLsTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls-tree <tree-id>",
		Short: "Print a tree object's entries in storage order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			id, err := object.ParseID(args[0])
			if err != nil {
				return err
			}

			entries, err := r.Store.ReadTree(id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), object.FormatTree(entries))
			return nil
		},
	}
}

func newLsFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls-files [commit-ish]",
		Short: "List all file paths reachable from a commit's tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := repo.Open(".")
			if err != nil {
				return err
			}

			target := "HEAD"
			if len(args) == 1 {
				target = args[0]
			}

			commitID, err := resolveCommitish(r, target)
			if err != nil {
				return err
			}

			paths, err := r.FlattenCommitTree(commitID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range paths {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
}

// resolveCommitish tries target as a ref name first, then as a raw
// object id.
func resolveCommitish(r *repo.Repo, target string) (object.ObjectID, error) {
	if id, err := r.ResolveRef(target); err == nil {
		return id, nil
	}
	id, err := object.ParseID(target)
	if err != nil {
		return "", fmt.Errorf("unknown ref or commit %q", target)
	}
	return id, nil
}
