package cli

import (
	"encoding/json"
	"fmt"

	invopop "github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/ludwig-ai/ludwig-go/engine/registry"
	"github.com/ludwig-ai/ludwig-go/engine/schema/combiners"
	"github.com/ludwig-ai/ludwig-go/engine/schema/preprocessing"
	"github.com/ludwig-ai/ludwig-go/engine/schema/trainer"
	"github.com/ludwig-ai/ludwig-go/engine/validation"
)

// sectionTypes are the schema structs reflected into $defs so editors get
// field-level completion beyond the structural skeleton.
func sectionTypes() map[string]any {
	return map[string]any{
		"ECDTrainer":    &trainer.ECDTrainer{},
		"GBMTrainer":    &trainer.GBMTrainer{},
		"Preprocessing": &preprocessing.Config{},
		"Concat":        &combiners.Concat{},
		"TabNet":        &combiners.TabNet{},
		"Transformer":   &combiners.Transformer{},
	}
}

func SchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the config surface",
		Long: "Print the structural JSON schema assembled from the component registry, " +
			"with reflected per-section definitions for editor tooling.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := map[string]any(validation.BuildSchema(registry.Default()))
			reflector := &invopop.Reflector{
				ExpandedStruct: true,
				DoNotReference: true,
			}
			defs := map[string]any{}
			for name, section := range sectionTypes() {
				reflected := reflector.Reflect(section)
				raw, err := json.Marshal(reflected)
				if err != nil {
					return fmt.Errorf("failed to reflect schema for %s: %w", name, err)
				}
				var asMap map[string]any
				if err := json.Unmarshal(raw, &asMap); err != nil {
					return fmt.Errorf("failed to decode schema for %s: %w", name, err)
				}
				defs[name] = asMap
			}
			doc["$defs"] = defs
			rendered, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to render schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
			return nil
		},
	}
	return cmd
}
