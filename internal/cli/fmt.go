package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elmkit/elmkit/internal/outline"
)

var fmtCheck bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [dir]",
	Short: "Rewrite elm.json in canonical form",
	Long: `Fmt decodes the manifest and writes it back with the canonical key
order, indentation, and sorted dependency maps. The semantic content is
unchanged; with --check the file is left alone and a non-zero exit reports
whether it differs from canonical form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Report instead of rewrite")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	root := projectRoot(args)
	path := outline.Path(root)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	o, err := outline.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	canonical := outline.Encode(o)
	if bytes.Equal(data, canonical) {
		logger.Debug("already canonical", "path", path)
		return nil
	}

	if fmtCheck {
		return fmt.Errorf("%s is not in canonical form", path)
	}

	if err := outline.Write(root, o); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "reformatted %s\n", path)
	return nil
}
