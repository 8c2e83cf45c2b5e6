package cli

import (
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ludwig",
		Short: "Ludwig config resolution CLI",
		Long:  "Resolve, validate and inspect declarative model configurations.",
	}

	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")
	root.PersistentFlags().Bool("log-source", false, "Annotate logs with source locations")

	root.AddCommand(
		ValidateCmd(),
		RenderCmd(),
		SchemaCmd(),
	)

	return root
}
