package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFilterCmd() *cobra.Command {
	var flags idFlags

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List the identifiers a query matches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, ids, err := flags.load()
			if err != nil {
				return err
			}

			q, err := parseQuery(flags.query)
			if err != nil {
				return err
			}

			matched := q.Filter(ids)

			out := cmd.OutOrStdout()
			for _, id := range matched {
				fmt.Fprintln(out, id)
			}

			fmt.Fprintf(out, "%d of %d identifiers match %s\n", len(matched), len(ids), q)

			if flags.dump {
				dumpIDs(cmd, matched)
			}

			return nil
		},
	}

	flags.register(cmd, true)

	return cmd
}
