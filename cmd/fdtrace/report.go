package main

import (
	"fmt"
	"os"

	"github.com/not-matthias/fdtrace/internal/archive"
	"github.com/not-matthias/fdtrace/internal/config"
	"github.com/not-matthias/fdtrace/internal/filter"
	"github.com/not-matthias/fdtrace/internal/logger"
	"github.com/not-matthias/fdtrace/internal/render"
	"github.com/not-matthias/fdtrace/internal/session"
	"github.com/not-matthias/fdtrace/internal/syscallrecord"
	"github.com/not-matthias/fdtrace/internal/thread"
)

// reconstructAndRender partitions records by thread, reconstructs, applies
// the configured filter, archives if requested, and renders the result to
// stdout in the configured format.
func reconstructAndRender(records []syscallrecord.Record, cfg config.Config) error {
	if cfg.Debug {
		for _, r := range records {
			logger.Debug.Printf("%+v", r)
		}
	}

	byTID := thread.Partition(records)
	analysis := session.Analyze(byTID, session.Options{
		TraceStdFD:  cfg.TraceStdFD,
		Concurrency: cfg.Concurrency,
	})

	if cfg.Filter != "" {
		crit, err := filter.ParseExpr(cfg.Filter)
		if err != nil {
			return err
		}
		analysis = filter.ApplyAnalysis(analysis, crit)
	}

	if cfg.ArchivePath != "" {
		f, err := os.Create(cfg.ArchivePath)
		if err != nil {
			return fmt.Errorf("opening archive path: %w", err)
		}
		defer f.Close()
		if err := archive.Write(f, analysis); err != nil {
			return fmt.Errorf("writing archive: %w", err)
		}
	}

	switch cfg.Format {
	case "json":
		return render.JSON(os.Stdout, analysis)
	default:
		render.Report(os.Stdout, analysis)
		return nil
	}
}
