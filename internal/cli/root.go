package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/elmkit/elmkit/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "elmkit",
	Short: "Inspect, validate, and format elm.json project manifests",
	Long: `elmkit works with the elm.json manifest that describes a project as
either an application (pinned dependency versions) or a package (dependency
constraints plus publishing metadata). It validates manifests, prints their
contents, rewrites them in canonical form, and manages the binary outline
cache used for fast reloads.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// projectRoot resolves the optional positional directory argument, defaulting
// to the current directory.
func projectRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
