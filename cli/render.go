package cli

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/ludwig-ai/ludwig-go/engine/config"
)

func RenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <config.yaml>",
		Short: "Render a fully-resolved model config",
		Long:  "Resolve a model config, filling in every default, and print the resolved form.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := setupLogger(cmd); err != nil {
				return err
			}
			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return fmt.Errorf("failed to get json flag: %w", err)
			}
			resolved, err := config.FromYAML(args[0])
			if err != nil {
				return err
			}
			dict, err := resolved.ToDict()
			if err != nil {
				return err
			}
			var rendered []byte
			if asJSON {
				rendered, err = json.MarshalIndent(dict, "", "  ")
			} else {
				rendered, err = yaml.Marshal(dict)
			}
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Render as JSON instead of YAML")
	return cmd
}
