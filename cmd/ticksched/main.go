package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lwos/internal/job"
	"lwos/internal/runner"
	"lwos/internal/sched"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "ticksched:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	passes     int
	csvPath    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "ticksched",
		Short:         "Run the cooperative scheduler demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "config.yml", "path to the YAML config")
	f.IntVar(&opts.passes, "passes", 2, "number of passes to run, 0 runs until interrupted (overrides config)")
	f.StringVar(&opts.csvPath, "csv", "", "write scheduler events to this CSV file")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	// Read the configuration
	cfg, err := runner.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("passes") {
		cfg.Passes = max(opts.passes, 0)
	}
	if opts.csvPath != "" {
		cfg.CSVPath = opts.csvPath
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	log := runner.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, true)
	log.Debug().Interface("config", cfg).Msg("loaded config")

	s, err := sched.New(cfg.Capacity)
	if err != nil {
		log.Error().Err(err).Msg("create scheduler")
		return err
	}

	events := runner.NewEventLog(log)
	defer func() {
		if err := events.Close(); err != nil {
			log.Warn().Err(err).Msg("close event log")
		}
	}()
	if cfg.CSVPath != "" {
		if err := events.EnableCSVLogging(cfg.CSVPath); err != nil {
			log.Error().Err(err).Str("path", cfg.CSVPath).Msg("enable csv logging")
			return err
		}
	}
	s.SetObserver(events.Handle)

	out := cmd.OutOrStdout()
	hello := &job.Print{Msg: "Hello", Out: out}
	middle := &job.Print{Msg: "scheduler", Out: out}
	world := &job.Print{Msg: "world!", Out: out}

	var ids [3]sched.TaskID
	for i, e := range []sched.Executor{hello, middle, world} {
		id, err := s.Add(e, sched.Waiting)
		if err != nil {
			log.Error().Err(err).Msg("add task")
			return err
		}
		ids[i] = id
	}

	// prints "Hello scheduler world!"
	if err := s.Process(); err != nil {
		return err
	}

	// disable the "scheduler" print task; the remaining passes print "Hello world!" only
	task, err := s.Get(ids[1])
	if err != nil {
		return err
	}
	task.Suspend()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Passes != 1 {
		remaining := cfg
		if remaining.Passes > 1 {
			remaining.Passes--
		}
		if err := runner.New(s, remaining, log).Run(ctx); err != nil {
			log.Error().Err(err).Msg("runner stopped")
			return err
		}
	}

	for _, row := range events.Tally().Rows() {
		log.Info().
			Uint8("task", uint8(row.ID)).
			Int64("dispatched", row.Dispatched).
			Int64("skipped", row.Skipped).
			Msg("task totals")
	}
	fmt.Fprintf(out, "%d passes\n", s.Passes())
	return nil
}

