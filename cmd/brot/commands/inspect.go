package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/brot/internal/app"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <config.yaml>",
		Short: "Show the cache state of a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cachePath, _ := cmd.Flags().GetString("cache")
			return c.app.Inspect(cmd.Context(), app.InspectOptions{
				ConfigPath: args[0],
				CachePath:  cachePath,
			})
		},
	}
	cmd.Flags().String("cache", "", "Cache file (default <config name>.cache)")
	return cmd
}
