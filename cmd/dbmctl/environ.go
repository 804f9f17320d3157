package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/environ"
)

func newEnvironCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "environ [KEY]",
		Short: "Show the URLs of related systems, or the one named KEY",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := environ.NewStore(environ.FromSession(a.session))
			if err := store.Fetch(cmd.Context()); err != nil {
				return err
			}

			if len(args) == 1 {
				url, ok := store.URL(args[0])
				if !ok {
					return fmt.Errorf("no url for %s", args[0])
				}
				return a.print(url)
			}
			return a.print(entities.SystemEnviron{
				URLs:     store.URLs(),
				Affinity: store.Affinity(),
			})
		},
	}
}
