// Package services defines the error taxonomy shared by tidyflix
// operations. Core packages return plain errors; the operation edges wrap
// them with a sentinel marker so the CLI can classify failures without
// string matching.
package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUsage marks operator mistakes: bad flags, missing directories.
	ErrUsage = errors.New("usage error")
	// ErrProbe marks media inspection failures. Probes degrade to empty
	// results, so this surfaces only from the probe edge itself.
	ErrProbe = errors.New("probe error")
	// ErrValidation marks refused operations, such as case-only renames on
	// a case-insensitive filesystem.
	ErrValidation = errors.New("validation error")
	// ErrExecution marks filesystem mutation failures during plan apply.
	ErrExecution = errors.New("execution error")
)

// Wrap builds an error message that includes operation context while
// tagging it with the provided marker. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrExecution
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failure"
	}
	return strings.Join(parts, ": ")
}
