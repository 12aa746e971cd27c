package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/not-matthias/fdtrace/internal/trace"
)

func newAnalyzeCmd(opts func() runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <trace-file>",
		Short: "Parse and reconstruct an already-captured trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts())
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening trace file: %w", err)
			}
			defer f.Close()

			records, err := trace.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing trace: %w", err)
			}

			return reconstructAndRender(records, cfg)
		},
	}
}
