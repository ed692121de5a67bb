package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elmkit/elmkit/internal/cache"
	"github.com/elmkit/elmkit/internal/outline"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the binary outline cache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status [dir]",
	Short: "Report whether the outline cache is fresh",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cache.New(projectRoot(args))
		stale, err := c.Stale()
		if err != nil {
			return err
		}
		if stale {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: stale or absent\n", c.Path())
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: fresh\n", c.Path())
		return nil
	},
}

var cacheWarmCmd = &cobra.Command{
	Use:   "warm [dir]",
	Short: "Decode the manifest and refresh the outline cache",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := projectRoot(args)
		o, err := outline.Read(root)
		if err != nil {
			return err
		}
		c := cache.New(root)
		if err := c.Store(o); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cached %s\n", c.Path())
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [dir]",
	Short: "Remove the outline cache",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cache.New(projectRoot(args))
		if err := c.Clear(); err != nil {
			return err
		}
		logger.Debug("cleared cache", "path", c.Path())
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheWarmCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
