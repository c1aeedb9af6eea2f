package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rebelnav/navodds/internal/config"
	"github.com/rebelnav/navodds/internal/logging"
	"github.com/rebelnav/navodds/internal/metrics"
	"github.com/rebelnav/navodds/mission"
	"github.com/rebelnav/navodds/odds"
)

// app carries flag values and the per-invocation logger and metrics.
type app struct {
	logLevel    string
	logJSON     bool
	metricsFile string
	maxStates   int
	parallelism int

	logger  *slog.Logger
	metrics *metrics.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "navodds",
		Short:        "Compute the odds of reaching the arrival planet before the countdown ends",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path on exit")
	pf.IntVar(&a.maxStates, "max-states", 0, "abort a search after this many states (0 = unlimited)")

	for _, c := range []*cobra.Command{newOddsCmd(a), newBatchCmd(a), newRoutesCmd(a)} {
		root.AddCommand(a.withMetricsFlush(c))
	}

	return root
}

// withMetricsFlush writes the metrics file after c runs, whether or not it
// failed. Cobra skips post-run hooks on error, so this wraps RunE instead.
func (a *app) withMetricsFlush(c *cobra.Command) *cobra.Command {
	run := c.RunE
	c.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if ferr := a.flushMetrics(); ferr != nil {
			if err != nil {
				a.logger.Error("metrics not written", slog.Any("error", ferr))
				return err
			}
			return ferr
		}
		return err
	}

	return c
}

// setup merges environment defaults under explicit flags and builds the
// logger and metrics.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("log-level") {
		a.logLevel = cfg.LogLevel
	}
	if !flags.Changed("log-json") {
		a.logJSON = cfg.LogJSON
	}
	if !flags.Changed("metrics-file") {
		a.metricsFile = cfg.MetricsFile
	}
	if !flags.Changed("max-states") {
		a.maxStates = cfg.MaxStates
	}
	if flags.Lookup("parallel") != nil && !flags.Changed("parallel") {
		a.parallelism = cfg.Parallelism
	}
	if a.maxStates < 0 {
		return fmt.Errorf("--max-states must be >= 0, got %d", a.maxStates)
	}

	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logging.New(logging.Config{
		Level:   level,
		JSON:    a.logJSON,
		Service: "navodds",
		Writer:  cmd.ErrOrStderr(),
	})
	a.metrics = metrics.New()

	return nil
}

func (a *app) flushMetrics() error {
	if a.metricsFile == "" || a.metrics == nil {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.Debug("metrics written", slog.String("path", a.metricsFile))

	return nil
}

// planner loads the vehicle document and builds its route graph. sources
// names the empire documents for log lines; it is only read once queries run.
func (a *app) planner(cmd *cobra.Command, falconPath string, sources map[*mission.Empire]string) (*mission.Planner, error) {
	f, err := mission.LoadFalcon(falconPath)
	if err != nil {
		return nil, err
	}
	var searchOpts []odds.Option
	if a.maxStates > 0 {
		searchOpts = append(searchOpts, odds.WithMaxStates(a.maxStates))
	}
	p, err := mission.NewPlanner(cmd.Context(), f,
		mission.WithLogger(a.logger),
		mission.WithSearchOptions(searchOpts...),
		mission.WithObserver(a.observe(sources)),
	)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("route graph built",
		slog.String("falcon", falconPath),
		slog.Int("planets", p.Graph().PlanetCount()),
		slog.Int("routes", p.Graph().RouteCount()),
	)

	return p, nil
}

// observe tags each finished query with a fresh query_id in the log and
// records it in the metrics. Batch calls it from several goroutines.
func (a *app) observe(sources map[*mission.Empire]string) mission.Observer {
	return func(e *mission.Empire, res *odds.Result, err error, elapsed time.Duration) {
		a.metrics.Observe(res, err, elapsed)
		log := a.logger.With(slog.String("query_id", uuid.NewString()), slog.String("empire", sources[e]))
		if err != nil {
			log.Error("odds failed", slog.Any("error", err))
			return
		}
		log.Info("odds computed",
			slog.String("odds", mission.FormatOdds(res.Probability)),
			slog.Int("expanded", res.Expanded),
			slog.Int("enqueued", res.Enqueued),
			slog.Duration("elapsed", elapsed),
		)
	}
}
