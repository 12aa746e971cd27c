package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/not-matthias/fdtrace/internal/runner"
	"github.com/not-matthias/fdtrace/internal/trace"
)

func newRunCmd(opts func() runOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <command>",
		Short: "Launch the probe against command and render the reconstruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts())
			if err != nil {
				return err
			}

			ctx, cancel := contextWithSignals()
			defer cancel()

			stdout, stop, err := runner.Run(ctx, args[0], runner.Options{})
			if err != nil {
				return fmt.Errorf("launching probe: %w", err)
			}

			records, parseErr := trace.Parse(stdout)
			if waitErr := stop(); waitErr != nil && parseErr == nil {
				return waitErr
			}
			if parseErr != nil {
				return fmt.Errorf("parsing trace: %w", parseErr)
			}

			return reconstructAndRender(records, cfg)
		},
	}
}
