package tagcheck

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// TagSource is one image tag declaration found in the document: the
// variable, its current value, and the command that enumerates the
// available tags. Immutable once extracted.
type TagSource struct {
	// Variable is the configuration key, always ending in "_image_tag".
	Variable string `json:"variable"`

	// CurrentValue is the tag presently recorded in the document.
	CurrentValue string `json:"current_value"`

	// Command is the full enumeration command from the trailing
	// comment, pipes and filters included. It is never interpreted
	// here, only handed to a runner verbatim.
	Command string `json:"skopeo_command"`

	// Line is the 1-based line number of the declaration.
	Line int `json:"line_number"`
}

// Extract scans document text and returns every tag declaration in
// document order.
//
// A line qualifies only if, after trimming, it is an "*_image_tag:"
// key, a value (optionally quoted), and a comment starting with
// "skopeo list-tags". Everything else is silently skipped; an empty
// result just means the document declares nothing.
func Extract(text string) []TagSource {
	var out []TagSource

	for i, line := range splitLines(text) {
		m := declRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}

		out = append(out, TagSource{
			Variable:     m[1],
			CurrentValue: m[2],
			Command:      m[3],
			Line:         i + 1,
		})
	}

	return out
}

// LoadSources reads the document at path and extracts its declarations.
// A read failure is fatal: nothing has been checked yet and the caller
// cannot proceed without the document.
func LoadSources(fs afero.Fs, path string) ([]TagSource, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return Extract(string(data)), nil
}
