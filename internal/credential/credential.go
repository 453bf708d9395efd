// Package credential reads the RescueTime API key from disk.
package credential

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissing is returned when the key file does not exist.
var ErrMissing = errors.New("api key file not found")

// Load returns the trimmed contents of the key file at path.
func Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return "", fmt.Errorf("read api key: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
