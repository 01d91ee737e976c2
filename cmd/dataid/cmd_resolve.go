package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dataid/internal/dataid"
	"dataid/internal/resolve"
)

func newResolveCmd() *cobra.Command {
	var flags idFlags

	cmd := &cobra.Command{
		Use:   "resolve <key>...",
		Short: "Resolve names or wavelengths to the best identifier",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ids, err := flags.load()
			if err != nil {
				return err
			}

			var filter *dataid.Query
			if flags.query != "" {
				if filter, err = parseQuery(flags.query); err != nil {
					return err
				}
			}

			c := resolve.New[*dataid.DataID]()
			for _, id := range ids {
				c.Add(id, id)
			}

			keys := make([]any, len(args))
			for i, a := range args {
				keys[i] = parseKey(a)
			}

			var found []*dataid.DataID

			if filter == nil {
				found, err = c.GetAll(cmd.Context(), keys)
				if err != nil {
					return err
				}
			} else {
				for _, key := range keys {
					id, err := c.GetFiltered(key, filter)
					if err != nil {
						return fmt.Errorf("key %v: %w", key, err)
					}

					found = append(found, id)
				}
			}

			out := cmd.OutOrStdout()
			for i, id := range found {
				fmt.Fprintf(out, "%s -> %s\n", args[i], id)
			}

			if flags.dump {
				dumpIDs(cmd, found)
			}

			return nil
		},
	}

	flags.register(cmd, false)

	return cmd
}
