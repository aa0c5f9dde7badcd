package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/brot/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <config.yaml>",
		Short: "Render the image of a configuration",
		Long: "Render loads the configuration, reuses a persisted cache when it matches,\n" +
			"populates the histogram layers otherwise, and writes the colorized image.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cachePath, _ := cmd.Flags().GetString("cache")
			outputPath, _ := cmd.Flags().GetString("output")
			workers, _ := cmd.Flags().GetInt("workers")
			force, _ := cmd.Flags().GetBool("force")
			watch, _ := cmd.Flags().GetBool("watch")

			opts := app.RenderOptions{
				ConfigPath: args[0],
				CachePath:  cachePath,
				OutputPath: outputPath,
				Workers:    workers,
				Force:      force,
			}
			if watch {
				return c.app.Watch(cmd.Context(), opts)
			}
			return c.app.Render(cmd.Context(), opts)
		},
	}
	cmd.Flags().String("cache", "", "Cache file (default <config name>.cache)")
	cmd.Flags().StringP("output", "o", "", "Image file, format chosen by extension (default <config name>.png)")
	cmd.Flags().IntP("workers", "j", 0, "Number of parallel workers (default number of CPUs)")
	cmd.Flags().BoolP("force", "f", false, "Ignore any persisted cache and recompute")
	cmd.Flags().BoolP("watch", "w", false, "Render again whenever the configuration changes")
	return cmd
}
