package tagcheck

import "regexp"

var (
	// Declaration lines, e.g.
	//   foo_image_tag: "1.2.3"  # skopeo list-tags docker://x | jq -r '.Tags[]'
	// Value may be quoted or bare; the whole comment after '#' is the command.
	declRe = regexp.MustCompile(
		`^(\w+_image_tag):\s*` + // variable name ending in _image_tag
			`["']?([^"'#\s]+)["']?\s*` + // value (quoted or unquoted)
			`#\s*(skopeo\s+list-tags\s+.+)$`, // comment with the enumeration command
	)

	// Leading numeric run: digits optionally repeated with . - _ separators.
	numRunRe = regexp.MustCompile(`^(\d+(?:[.\-_]\d+)*)`)

	// Separators inside a numeric run.
	numSepRe = regexp.MustCompile(`[.\-_]`)
)
