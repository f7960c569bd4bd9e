package tagcheck

import "strings"

// toTok normalizes a free-form string into a lowercased token.
func toTok(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// splitLines splits on "\n", tolerating trailing "\r" from CRLF input.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// lastStrings returns the final n elements (all of them if n >= len).
// The slice is shared, not copied; callers treat results as read-only.
func lastStrings(in []string, n int) []string {
	if n > 0 && n < len(in) {
		return in[len(in)-n:]
	}

	return in
}

// nonEmptyLines trims every line of raw output and drops the empty ones,
// preserving order.
func nonEmptyLines(raw string) []string {
	lines := splitLines(raw)
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}

	return out
}
