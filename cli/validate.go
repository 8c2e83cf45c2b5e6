package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ludwig-ai/ludwig-go/engine/config"
	"github.com/ludwig-ai/ludwig-go/engine/core"
	"github.com/ludwig-ai/ludwig-go/pkg/logger"
)

func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Validate a model config file",
		Long:  "Resolve a model config with all defaults applied and report the first validation error, if any.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := setupLogger(cmd)
			if err != nil {
				return err
			}
			if _, err := config.FromYAML(args[0]); err != nil {
				var validationErr *core.ConfigValidationError
				if errors.As(err, &validationErr) {
					log.Error("Config is invalid", "code", validationErr.Code)
				}
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Config is valid.")
			return nil
		},
	}
	return cmd
}

func setupLogger(cmd *cobra.Command) (logger.Logger, error) {
	logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return nil, err
	}
	return logger.SetupLogger(logLevel, logJSON, logSource), nil
}
