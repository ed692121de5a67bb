package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/elmkit/elmkit/internal/cache"
	"github.com/elmkit/elmkit/internal/outline"
)

var showCached bool

var showCmd = &cobra.Command{
	Use:   "show [dir]",
	Short: "Print a summary of a project's manifest",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showCached, "cached", false, "Load from the binary outline cache when fresh")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	root := projectRoot(args)

	o, err := loadOutline(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch v := o.(type) {
	case *outline.AppOutline:
		fmt.Fprintf(out, "application (elm %s)\n", v.ElmVersion)
		fmt.Fprintln(out, "source directories:")
		for _, dir := range v.SourceDirs.All() {
			fmt.Fprintf(out, "  %s\n", dir)
		}
		printPinned(cmd, "dependencies", v.Direct, v.Indirect)
		printPinned(cmd, "test dependencies", v.TestDirect, v.TestIndirect)
	case *outline.PkgOutline:
		fmt.Fprintf(out, "package %s %s (%s)\n", v.Name, v.Version, v.License)
		fmt.Fprintf(out, "%s\n", v.Summary)
		fmt.Fprintf(out, "elm %s\n", v.ElmVersion)
		fmt.Fprintln(out, "exposed modules:")
		for _, m := range outline.Flatten(v.Exposed) {
			fmt.Fprintf(out, "  %s\n", m)
		}
		printRanged(cmd, "dependencies", v.Deps)
		printRanged(cmd, "test dependencies", v.TestDeps)
	}
	return nil
}

// loadOutline reads the project outline, going through the binary cache when
// --cached is set. A cache miss falls back to the manifest and refreshes the
// cache.
func loadOutline(root string) (outline.Outline, error) {
	if !showCached {
		return outline.Read(root)
	}

	c := cache.New(root)
	if o, ok, err := c.Load(); err != nil {
		return nil, err
	} else if ok {
		logger.Debug("loaded outline from cache", "path", c.Path())
		return o, nil
	}

	logger.Debug("cache miss, reading manifest")
	o, err := outline.Read(root)
	if err != nil {
		return nil, err
	}
	if err := c.Store(o); err != nil {
		return nil, err
	}
	return o, nil
}

func printPinned(cmd *cobra.Command, label string, direct, indirect outline.Pinned) {
	if len(direct) == 0 && len(indirect) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d direct, %d indirect):\n", label, len(direct), len(indirect))
	for _, line := range pinnedLines(direct) {
		fmt.Fprintf(out, "  %s\n", line)
	}
	for _, line := range pinnedLines(indirect) {
		fmt.Fprintf(out, "  %s (indirect)\n", line)
	}
}

func printRanged(cmd *cobra.Command, label string, deps outline.Ranged) {
	if len(deps) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	lines := make([]string, 0, len(deps))
	for name, constraint := range deps {
		lines = append(lines, fmt.Sprintf("%s  %s", name, constraint))
	}
	sort.Strings(lines)
	fmt.Fprintf(out, "%s:\n", label)
	for _, line := range lines {
		fmt.Fprintf(out, "  %s\n", line)
	}
}

func pinnedLines(deps outline.Pinned) []string {
	lines := make([]string, 0, len(deps))
	for name, v := range deps {
		lines = append(lines, fmt.Sprintf("%s  %s", name, v))
	}
	sort.Strings(lines)
	return lines
}
