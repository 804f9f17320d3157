package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"terraform-provider-dbm/pkg/client/env"
	"terraform-provider-dbm/pkg/client/session"
)

type app struct {
	out    io.Writer
	logger *zap.Logger

	envFiles []string
	apiURL   string
	bizID    int64
	timeZone string
	verbose  bool

	session *session.Session
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:          "dbmctl",
		Short:        "Read clusters, instances, tickets and settings from BlueKing DBM",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load before reading the environment")
	flags.StringVar(&a.apiURL, "api-url", "", "DBM api url, overrides DBM_API_URL")
	flags.Int64Var(&a.bizID, "biz-id", 0, "business id, overrides DBM_BIZ_ID")
	flags.StringVar(&a.timeZone, "time-zone", "", "time zone for displayed times, overrides DBM_TIME_ZONE")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		newSpiderCmd(a),
		newSqlserverCmd(a),
		newMongodbCmd(a),
		newEnvironCmd(a),
		newTicketCmd(a),
	)
	return root
}

func (a *app) setup() error {
	level := zapcore.WarnLevel
	if a.verbose {
		level = zapcore.DebugLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.logger = logger

	conf, err := env.Load(a.envFiles...)
	if err != nil {
		return err
	}
	if a.apiURL != "" {
		conf.APIURL = a.apiURL
	}
	if a.bizID != 0 {
		conf.BizID = a.bizID
	}
	if a.timeZone != "" {
		conf.TimeZone = a.timeZone
	}
	a.logger.Debug("loaded config", zap.Stringer("config", conf))

	s, err := session.New(conf)
	if err != nil {
		return err
	}
	a.session = s
	return nil
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
