package core

import (
	"fmt"

	"github.com/mohae/deepcopy"
)

// DeepCopyMap returns a deep copy of the provided map[string]any.
//
// If the underlying copy cannot be asserted back to map[string]any an error is returned.
func DeepCopyMap(m map[string]any) (map[string]any, error) {
	if m == nil {
		return nil, nil
	}
	copiedInterface := deepcopy.Copy(m)
	copied, ok := copiedInterface.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to copy map")
	}
	return copied, nil
}

// DeepCopy creates a deep copy of the supplied value. It is used wherever a
// schema object sourced from the registry or the global defaults section must
// not alias the original: every feature owns its nested specs exclusively.
func DeepCopy[T any](v T) (T, error) {
	var zero T
	copied := deepcopy.Copy(v)
	result, ok := copied.(T)
	if !ok {
		return zero, fmt.Errorf("failed to cast copied value to type %T", zero)
	}
	return result, nil
}
