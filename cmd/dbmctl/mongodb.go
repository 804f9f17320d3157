package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"terraform-provider-dbm/pkg/client/sources"
)

func newMongodbCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mongodb",
		Short: "MongoDB instances",
	}
	cmd.AddCommand(newMongodbInstanceCmd(a))
	return cmd
}

func newMongodbInstanceCmd(a *app) *cobra.Command {
	var clusterID int
	cmd := &cobra.Command{
		Use:   "instance ADDRESS",
		Short: "Show a MongoDB instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := sources.GetMongodbInstanceDetails(cmd.Context(), a.session, args[0], clusterID)
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
