// Package speech defines the text-to-speech contract shared by the two
// interchangeable synthesis backends.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const dirPermissions = 0o750

// Static errors.
var (
	// ErrConfigMissing means a required credential or region is unset
	ErrConfigMissing = errors.New("speech synthesis not configured")

	// ErrSynthesis means the vendor reported a non-success or the transport failed
	ErrSynthesis = errors.New("speech synthesis failed")
)

// Synthesizer converts text plus a language tag into an audio file under a
// fixed output directory and returns the generated file name.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) (string, error)
}

// NewOutputFile creates the output directory on first use and reserves a
// collision-resistant file name (128-bit random identifier) for one
// synthesis result.
func NewOutputFile(outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ".mp3"
	return filepath.Join(outputDir, name), nil
}
