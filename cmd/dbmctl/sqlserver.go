package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"terraform-provider-dbm/internal/utils"
	"terraform-provider-dbm/pkg/client/entities"
	"terraform-provider-dbm/pkg/client/requests"
	"terraform-provider-dbm/pkg/client/sources"
)

func newSqlserverCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqlserver",
		Short: "SQLServer resource tree and permissions",
	}
	cmd.AddCommand(newSqlserverTreeCmd(a), newSqlserverPermissionsCmd(a))
	return cmd
}

func newSqlserverTreeCmd(a *app) *cobra.Command {
	var clusterType string
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the business resource tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := sources.GetSqlserverResourceTree(cmd.Context(), a.session, clusterType)
			if err != nil {
				return err
			}
			return a.print(tree)
		},
	}
	cmd.Flags().StringVar(&clusterType, "cluster-type", "sqlserver_ha", "sqlserver_single or sqlserver_ha")
	return cmd
}

func newSqlserverPermissionsCmd(a *app) *cobra.Command {
	var (
		user      string
		accessDBs []string
	)
	cmd := &cobra.Command{
		Use:   "permissions",
		Short: "List accounts with their authorization rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := requests.Params{}
			setIfChanged(cmd, params, "user", "user", user)
			setIfChanged(cmd, params, "access-db", "access_db", accessDBs)
			a.logger.Debug("listing sqlserver permissions", zap.Any("params", params))

			_, permissions, err := utils.FetchAllPages(cmd.Context(), params,
				func(ctx context.Context, params requests.Params) (*entities.ListBase[entities.SqlserverPermission], error) {
					return sources.GetSqlserverPermissionRules(ctx, a.session, params)
				},
			)
			if err != nil {
				return err
			}
			permissions = sources.FilterPermissionRules(permissions, user, accessDBs)
			a.logger.Info("sqlserver permissions listed", zap.Int("count", len(permissions)))
			return a.print(entities.ListBase[entities.SqlserverPermission]{
				Count:   len(permissions),
				Results: permissions,
			})
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "exact account name")
	cmd.Flags().StringSliceVar(&accessDBs, "access-db", nil, "keep rules on these databases")
	return cmd
}
