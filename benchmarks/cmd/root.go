package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bandits",
		Short: "Compare bandit policies on simulated arms",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			UpdateFlags()
			setupLogger(flags.Debug)
			flags.Record()
		},
		SilenceUsage: true,
	}
	AddFlags(cmd)

	cmd.AddCommand(
		StationaryCommand(),
		NonStationaryCommand(),
		FileCommand(),
	)

	return cmd
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
