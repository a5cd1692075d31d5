package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/zeu5/bandits/benchmarks/common"
	"github.com/zeu5/bandits/core"
)

func FileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "file <experiment.yaml>",
		Args:  cobra.ExactArgs(1),
		Short: "Run the agents and arms described in an experiment file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := common.LoadExperimentFile(args[0])
			if err != nil {
				return err
			}
			f.Apply(flags)
			return runComparison(func(w io.Writer) (*core.Comparison, error) {
				return f.Comparison(w)
			})
		},
	}
}
