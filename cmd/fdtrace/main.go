// Command fdtrace reconstructs per-file read/write sessions from a captured
// (or freshly launched) syscall trace and renders a report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/not-matthias/fdtrace/internal/config"
	"github.com/not-matthias/fdtrace/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug       bool
		traceStdFD  bool
		concurrency int
		filterExpr  string
		archivePath string
		format      string
	)

	root := &cobra.Command{
		Use:           "fdtrace",
		Short:         "Reconstructs per-file syscall sessions from a trace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "dump the parsed record stream before reconstruction")
	root.PersistentFlags().BoolVar(&traceStdFD, "trace-stdfd", false, "enable synthetic stdin/stdout/stderr sessions")
	root.PersistentFlags().IntVar(&concurrency, "concurrency", 0, "worker-pool size for per-thread reconstruction (0 = config default)")
	root.PersistentFlags().StringVar(&filterExpr, "filter", "", "filter-engine expression applied before rendering/archiving")
	root.PersistentFlags().StringVar(&archivePath, "archive", "", "additionally write the reconstruction as an Avro container file")
	root.PersistentFlags().StringVar(&format, "format", "", "render format: text|json (empty = config default)")

	opts := func() runOptions {
		return runOptions{
			Debug:       debug,
			TraceStdFD:  traceStdFD,
			Concurrency: concurrency,
			FilterExpr:  filterExpr,
			ArchivePath: archivePath,
			Format:      format,
		}
	}

	root.AddCommand(newAnalyzeCmd(opts))
	root.AddCommand(newRunCmd(opts))

	return root
}

// runOptions carries the flag overrides common to analyze and run; zero
// values mean "fall through to config.Config".
type runOptions struct {
	Debug       bool
	TraceStdFD  bool
	Concurrency int
	FilterExpr  string
	ArchivePath string
	Format      string
}

func resolveConfig(o runOptions) (config.Config, error) {
	v := config.New()
	cfg, err := config.Load(v)
	if err != nil {
		return config.Config{}, err
	}

	if o.Debug {
		cfg.Debug = true
	}
	if o.TraceStdFD {
		cfg.TraceStdFD = true
	}
	if o.Concurrency > 0 {
		cfg.Concurrency = o.Concurrency
	}
	if o.FilterExpr != "" {
		cfg.Filter = o.FilterExpr
	}
	if o.ArchivePath != "" {
		cfg.ArchivePath = o.ArchivePath
	}
	if o.Format != "" {
		cfg.Format = o.Format
	}

	if cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return cfg, nil
}

// contextWithSignals returns a context canceled on SIGINT/SIGTERM, the way a
// long-running probe launch under `run` needs to be interruptible.
func contextWithSignals() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
