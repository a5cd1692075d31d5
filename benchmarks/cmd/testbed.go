package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/zeu5/bandits/benchmarks/nonstationary"
	"github.com/zeu5/bandits/benchmarks/stationary"
	"github.com/zeu5/bandits/core"
	"github.com/zeu5/bandits/util"
)

func StationaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stationary",
		Short: "Run the testbed of arms with fixed values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComparison(func(w io.Writer) (*core.Comparison, error) {
				return stationary.PrepareComparison(flags, w), nil
			})
		},
	}
}

func NonStationaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nonstationary",
		Short: "Run the testbed of arms with drifting values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComparison(func(w io.Writer) (*core.Comparison, error) {
				return nonstationary.PrepareComparison(flags, w), nil
			})
		},
	}
}

// runComparison runs the prepared comparison until it finishes or the
// process is interrupted. Summaries are printed above the progress line.
func runComparison(prepare func(io.Writer) (*core.Comparison, error)) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	doneCh := make(chan struct{})
	defer close(doneCh)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-sigCh:
		case <-doneCh:
		}
		cancel()
	}()

	printer := util.NewTerminalPrinter(os.Stdout)
	cmp, err := prepare(printer.Bypass())
	if err != nil {
		return err
	}
	return cmp.Run(ctx, flags.NumRuns, flags.RunConfig(), printer)
}
