package lookup

import (
	"fmt"
	"strings"
)

// Normalize canonicalizes a raw phone number string. Input already in
// international form (leading "+") passes through unchanged. Anything else
// is treated as a national number and combined with the pipeline's default
// region at parse time. Pure; the only failure is empty input.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}
	return trimmed, nil
}
