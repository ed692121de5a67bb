package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elmkit/elmkit/internal/outline"
	"github.com/elmkit/elmkit/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate the elm.json manifest of a project",
	Long: `Validate checks the manifest in two passes. The schema pass reports
every structural issue it can find at once. If the schema pass is clean, the
manifest is decoded and, for applications, each declared source directory is
checked for existence.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	root := projectRoot(args)
	path := outline.Path(root)
	logger.Debug("validating manifest", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := schema.Validate(data)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			if issue.Path == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", issue.Message)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", issue.Path, issue.Message)
		}
		return fmt.Errorf("%s has %d schema issue(s)", path, len(result.Issues))
	}
	logger.Debug("schema check passed")

	if _, err := outline.Read(root); err != nil {
		var badDirs *outline.BadSourceDirsError
		if errors.As(err, &badDirs) {
			for _, dir := range badDirs.Missing {
				fmt.Fprintf(cmd.OutOrStdout(), "  missing source directory: %s\n", dir)
			}
			return fmt.Errorf("%s: %d source directories missing", path, len(badDirs.Missing))
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
	return nil
}
