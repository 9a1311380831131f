package app

import (
	"context"
	"flag"

	"github.com/spf13/cobra"
)

// NewSeqcastCommand creates the root *cobra.Command with all subcommands
// attached.
func NewSeqcastCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:  "seqcast",
		Long: `seqcast assembles and validates MQ-CNN / MQ-RNN forecasting estimators`,
	}

	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	cmd.AddCommand(NewCmdServe(ctx))
	cmd.AddCommand(NewCmdValidate())
	cmd.AddCommand(NewCmdBuild())
	cmd.AddCommand(NewCmdInspect())
	cmd.AddCommand(NewCmdVersion())

	return cmd
}
