package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRankCmd() *cobra.Command {
	var (
		flags idFlags
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the matching identifiers by distance to a query",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, ids, err := flags.load()
			if err != nil {
				return err
			}

			q, err := parseQuery(flags.query)
			if err != nil {
				return err
			}

			if !all {
				ids = q.Filter(ids)
			}

			ranked, err := q.Rank(ids)
			if err != nil {
				return err
			}

			t := newTable()
			t.AppendHeader([]any{"#", "Distance", "Identifier"})

			for i, c := range ranked {
				t.AppendRow([]any{i + 1, formatDistance(c.Distance), c.ID.String()})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, t.Render())

			if ranked.IsAmbiguous() {
				fmt.Fprintln(out, "warning: the two best candidates are equally distant")
			}

			if flags.dump {
				dumpIDs(cmd, ranked.IDs())
			}

			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&all, "all", false, "Rank every identifier, not only the matching ones")

	return cmd
}
