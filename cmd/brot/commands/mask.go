package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/brot/internal/app"
)

func (c *CLI) newMaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask <config.yaml>",
		Short: "Render the cardioid and period-2 bulb mask of a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputPath, _ := cmd.Flags().GetString("output")
			return c.app.Mask(cmd.Context(), app.MaskOptions{
				ConfigPath: args[0],
				OutputPath: outputPath,
			})
		},
	}
	cmd.Flags().StringP("output", "o", "", "Image file (default <config name>-mask.png)")
	return cmd
}
