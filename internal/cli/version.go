package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionShort bool

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}
		fmt.Fprintf(out, "elmkit %s\n", buildVersion)
		fmt.Fprintf(out, "  commit: %s\n", buildCommit)
		fmt.Fprintf(out, "  built:  %s\n", buildDate)
		return nil
	},
}
