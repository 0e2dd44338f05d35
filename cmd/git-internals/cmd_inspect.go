package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newInspectCmd is the prompt-driven dispatcher: one line selects the
// operation, a second line supplies the hash or branch it needs.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Interactively pick an operation and a hash or branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			fmt.Fprint(out, "operation (cat-file, log, ls-files, branch): ")
			op, err := readLine(in)
			if err != nil {
				return err
			}

			switch op {
			case "cat-file":
				fmt.Fprint(out, "object id: ")
				id, err := readLine(in)
				if err != nil {
					return err
				}
				return runSub(cmd, newCatFileCmd(), id)
			case "log":
				fmt.Fprint(out, "branch: ")
				branch, err := readLine(in)
				if err != nil {
					return err
				}
				return runSub(cmd, newLogCmd(), branch)
			case "ls-files":
				fmt.Fprint(out, "commit id or branch: ")
				target, err := readLine(in)
				if err != nil {
					return err
				}
				return runSub(cmd, newLsFilesCmd(), target)
			case "branch":
				return runSub(cmd, newBranchCmd())
			default:
				return fmt.Errorf("unknown operation %q", op)
			}
		},
	}
}

func readLine(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("read input: unexpected end of input")
	}
	return strings.TrimSpace(in.Text()), nil
}

func runSub(parent *cobra.Command, sub *cobra.Command, args ...string) error {
	sub.SetArgs(args)
	sub.SetIn(parent.InOrStdin())
	sub.SetOut(parent.OutOrStdout())
	sub.SetErr(parent.ErrOrStderr())
	return sub.Execute()
}
