package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TorgrimRL/Git-Internals/pkg/object"
)

func main() {
	root := &cobra.Command{
		Use:   "git-internals",
		Short: "Read-only inspector for Git loose object stores",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newCatFileCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newLsTreeCmd())
	root.AddCommand(newLsFilesCmd())
	root.AddCommand(newBranchCmd())
	root.AddCommand(newInspectCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeFailure(err))
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "git-internals 0.1.0-dev")
		},
	}
}

// describeFailure prefixes the error with its failure kind so a user
// can tell a missing object from a broken one at a glance.
func describeFailure(err error) string {
	switch {
	case errors.Is(err, object.ErrObjectNotFound):
		return "object not found: " + err.Error()
	case errors.Is(err, object.ErrCorruptObject):
		return "corrupt object: " + err.Error()
	case errors.Is(err, object.ErrMalformedObject):
		return "malformed object: " + err.Error()
	default:
		return err.Error()
	}
}
