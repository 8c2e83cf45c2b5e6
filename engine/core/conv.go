package core

import (
	"encoding/json"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// AsMap converts a config struct into its plain map form via a JSON
// round-trip. Interface-typed fields serialize as their concrete values, and
// numbers normalize to float64, so maps produced here compare stably.
func AsMap(config any) (map[string]any, error) {
	bytes, err := json.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(bytes, &configMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config to map: %w", err)
	}
	return configMap, nil
}

// DecodeMap decodes data onto an existing target struct. Only keys present in
// data are touched: fields the user did not specify keep whatever value the
// target already carries. This is the property the defaults layering and
// update paths depend on.
func DecodeMap(data map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "json",
		Squash:           true,
		Result:           target,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return NewErrorf(ErrCodeConversion, "failed to decode config section: %s", err.Error())
	}
	return nil
}

// FromMap decodes data into a fresh value of type T.
func FromMap[T any](data any) (T, error) {
	var config T
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "json",
		Squash:           true,
		Result:           &config,
	})
	if err != nil {
		return config, err
	}
	return config, decoder.Decode(data)
}
