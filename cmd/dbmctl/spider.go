package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"terraform-provider-dbm/pkg/client/requests"
	"terraform-provider-dbm/pkg/client/sources"
)

// listFlags are the paging flags shared by list commands.
type listFlags struct {
	limit  int
	offset int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.limit, "limit", 10, "page size")
	cmd.Flags().IntVar(&f.offset, "offset", 0, "page offset")
}

func (f *listFlags) params() requests.Params {
	return requests.Params{"limit": f.limit, "offset": f.offset}
}

// setIfChanged copies a flag value into params only when it was given on the
// command line.
func setIfChanged(cmd *cobra.Command, params requests.Params, flag, key string, value any) {
	if cmd.Flags().Changed(flag) {
		params[key] = value
	}
}

func newSpiderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spider",
		Short: "Spider (TenDB cluster) clusters and instances",
	}
	cmd.AddCommand(
		newSpiderListCmd(a),
		newSpiderGetCmd(a),
		newSpiderInstancesCmd(a),
		newSpiderInstanceCmd(a),
	)
	return cmd
}

func newSpiderListCmd(a *app) *cobra.Command {
	var (
		paging               listFlags
		name, domain, status string
		dbModuleID           int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List spider clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := paging.params()
			setIfChanged(cmd, params, "name", "name", name)
			setIfChanged(cmd, params, "domain", "domain", domain)
			setIfChanged(cmd, params, "status", "status", status)
			setIfChanged(cmd, params, "db-module-id", "db_module_id", dbModuleID)
			a.logger.Debug("listing spider clusters", zap.Any("params", params))

			list, err := sources.GetSpiderList(cmd.Context(), a.session, params)
			if err != nil {
				return err
			}
			a.logger.Info("spider clusters listed", zap.Int("count", list.Count))
			return a.print(list)
		},
	}
	paging.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "cluster name")
	cmd.Flags().StringVar(&domain, "domain", "", "master domain")
	cmd.Flags().StringVar(&status, "status", "", "cluster status")
	cmd.Flags().IntVar(&dbModuleID, "db-module-id", 0, "db module id")
	return cmd
}

func newSpiderGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a spider cluster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid cluster id %q: %w", args[0], err)
			}
			cluster, err := sources.GetSpiderDetails(cmd.Context(), a.session, id)
			if err != nil {
				return err
			}
			if err := cluster.Validate(); err != nil {
				a.logger.Warn("incomplete cluster payload", zap.Error(err))
			}
			return a.print(cluster)
		},
	}
}

func newSpiderInstancesCmd(a *app) *cobra.Command {
	var (
		paging           listFlags
		clusterID        int
		role, ip, status string
	)
	cmd := &cobra.Command{
		Use:   "instances",
		Short: "List spider and remote instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := paging.params()
			setIfChanged(cmd, params, "cluster-id", "cluster_id", clusterID)
			setIfChanged(cmd, params, "role", "role", role)
			setIfChanged(cmd, params, "ip", "ip", ip)
			setIfChanged(cmd, params, "status", "status", status)
			a.logger.Debug("listing spider instances", zap.Any("params", params))

			list, err := sources.GetSpiderInstances(cmd.Context(), a.session, params)
			if err != nil {
				return err
			}
			a.logger.Info("spider instances listed", zap.Int("count", list.Count))
			return a.print(list)
		},
	}
	paging.register(cmd)
	cmd.Flags().IntVar(&clusterID, "cluster-id", 0, "cluster id")
	cmd.Flags().StringVar(&role, "role", "", "instance role")
	cmd.Flags().StringVar(&ip, "ip", "", "instance ip")
	cmd.Flags().StringVar(&status, "status", "", "instance status")
	return cmd
}

func newSpiderInstanceCmd(a *app) *cobra.Command {
	var clusterID int
	cmd := &cobra.Command{
		Use:   "instance ADDRESS",
		Short: "Show a spider or remote instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := sources.GetSpiderInstanceDetails(cmd.Context(), a.session, args[0], clusterID)
			if err != nil {
				return err
			}
			if err := inst.Validate(); err != nil {
				a.logger.Warn("incomplete instance payload", zap.Error(err))
			}
			return a.print(inst)
		},
	}
	cmd.Flags().IntVar(&clusterID, "cluster-id", 0, "cluster id")
	_ = cmd.MarkFlagRequired("cluster-id")
	return cmd
}
