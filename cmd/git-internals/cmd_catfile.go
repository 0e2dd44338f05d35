package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TorgrimRL/Git-Internals/pkg/object"
	"github.com/TorgrimRL/Git-Internals/pkg/repo"
)

func newCatFileCmd() *cobra.Command {
	var typeOnly bool

	cmd := &cobra.Command{
		Use:   "cat-file <object-id>",
		Short: "Decode and print a loose object",
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

			obj, err := r.Store.Read(id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if typeOnly {
				fmt.Fprintln(out, obj.Kind)
				return nil
			}

			switch obj.Kind {
			case object.KindCommit:
				commit, err := object.DecodeCommit(obj.Body)
				if err != nil {
					return err
				}
				cfg, err := r.DisplayConfig()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, object.FormatCommit(commit, cfg.TimeLayout))
			case object.KindTree:
				fmt.Fprint(out, object.FormatTree(object.DecodeTree(obj.Body)))
			case object.KindBlob:
				fmt.Fprint(out, object.FormatBlob(obj.Body))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&typeOnly, "type", "t", false, "print only the object's type")

	return cmd
}
