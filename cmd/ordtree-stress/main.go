package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eaugeas/ordtree/config"
	"github.com/eaugeas/ordtree/logs"
	"github.com/eaugeas/ordtree/stress"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	logLevelKey = "log-level"
	logJSONKey  = "log-json"
)

type logConfig struct {
	Level logrus.Level
	JSON  bool
}

func (c *logConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(logLevelKey, "info", "minimum level of the log entries")
	cmd.PersistentFlags().Bool(logJSONKey, false, "write log entries as JSON")
	return nil
}

func (c *logConfig) Configure(v *viper.Viper) error {
	level, err := logs.ParseLevel(v.GetString(logLevelKey))
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	c.Level = level
	c.JSON = v.GetBool(logJSONKey)
	return nil
}

type appConfig struct {
	log    *logConfig
	stress *stress.Config
}

func (c appConfig) Use() string {
	return "ordtree-stress"
}

func (c appConfig) EnvPrefix() string {
	return "ORDTREE_STRESS"
}

func (c appConfig) Binders() []config.Binder {
	return []config.Binder{c.log, c.stress}
}

func run(ctx context.Context, args []string) error {
	cfg := appConfig{log: &logConfig{}, stress: &stress.Config{}}

	parser, err := config.Generate(cfg)
	if err != nil {
		return err
	}

	if err := parser.Parse(args); err != nil {
		parser.Usage()
		return errors.Wrap(err, "failed to parse configuration")
	}

	logger := logs.NewLogrus(logs.LogrusLoggerProperties{
		Level: cfg.log.Level,
		JSON:  cfg.log.JSON,
	})

	ctx = logs.WithTraceID(ctx, time.Now().UnixNano())
	workloads := cfg.stress.Build()
	logger.Info(ctx, "starting stress run", logs.MapFields{
		"workloads":    len(workloads),
		"ops":          cfg.stress.Ops,
		"keys":         cfg.stress.Keys,
		"remove_ratio": cfg.stress.RemoveRatio,
		"concurrency":  cfg.stress.Concurrency,
		"node_limit":   cfg.stress.NodeLimit,
	})

	start := time.Now()
	results := stress.NewRunnerWithOpts(stress.RunnerOpts{
		Concurrency: cfg.stress.Concurrency,
	}).Run(ctx, workloads)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fields := logs.MapFields{"err": res.Err.Error()}
			res.Report.Log(fields)
			if loggable, ok := res.Err.(logs.Loggable); ok {
				loggable.Log(fields)
			}
			logger.Error(ctx, "workload failed", fields)
			continue
		}

		logger.Debug(ctx, "workload completed", res.Report)
	}

	logger.Info(ctx, "stress run completed", logs.MapFields{
		"workloads": len(results),
		"failed":    failed,
		"elapsed":   time.Since(start).String(),
	})

	if failed > 0 {
		return errors.Errorf("%d of %d workloads failed", failed, len(results))
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
