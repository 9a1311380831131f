package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seqcast/seqcast/pkg/version"
)

func NewCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print seqcast version",
		Long: `
Print version information and related build info`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := json.Marshal(version.GetVersionInfo())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
