package main

import (
	"fmt"
	"strings"

	"github.com/jaredhocutt/tagcheck"

	"github.com/charmbracelet/lipgloss"
)

// styleSet carries every style the report uses. Styling is an explicit
// value handed around, not process-wide state: pass enabled=false and
// every Render becomes a no-op.
type styleSet struct {
	good lipgloss.Style
	warn lipgloss.Style
	bad  lipgloss.Style
	name lipgloss.Style
	bold lipgloss.Style
}

func newStyles(enabled bool) styleSet {
	if !enabled {
		plain := lipgloss.NewStyle()
		return styleSet{good: plain, warn: plain, bad: plain, name: plain, bold: plain}
	}

	return styleSet{
		good: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warn: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		bad:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		name: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		bold: lipgloss.NewStyle().Bold(true),
	}
}

// renderStatus is the short inline form shown while checking.
func renderStatus(s tagcheck.Status, styles styleSet) string {
	switch s {
	case tagcheck.StatusUpToDate:
		return styles.good.Render("up-to-date")
	case tagcheck.StatusUpdateAvailable:
		return styles.warn.Render("update available")
	case tagcheck.StatusError:
		return styles.bad.Render("failed")
	default:
		return styles.bad.Render("unknown")
	}
}

// printReport renders the final human-readable summary: current/failed
// entries first, update details after, then the counters.
func printReport(results []tagcheck.CheckResult, styles styleSet, updatesOnly bool) {
	fmt.Printf("\n%s\n", styles.bold.Render(strings.Repeat("=", 60)))
	fmt.Printf("%s\n\n", styles.bold.Render("Results:"))

	var current, updates, errors int

	if !updatesOnly {
		for _, r := range results {
			switch r.Status {
			case tagcheck.StatusUpToDate:
				fmt.Printf("  %s %s: %s\n\n", styles.good.Render("✓"), r.Variable, r.CurrentValue)
			case tagcheck.StatusError:
				fmt.Printf("  %s %s: %s (failed to check)\n\n", styles.bad.Render("✗"), r.Variable, r.CurrentValue)
			}
		}
	}

	for _, r := range results {
		switch r.Status {
		case tagcheck.StatusUpToDate:
			current++
		case tagcheck.StatusError:
			errors++
		case tagcheck.StatusUpdateAvailable:
			updates++

			fmt.Printf("  %s %s\n", styles.warn.Render("▶"), styles.bold.Render(r.Variable))
			fmt.Printf("    Current: %s\n", r.CurrentValue)
			fmt.Printf("    Latest:  %s", styles.good.Render(*r.LatestValue))
			if r.UpdateType != "" && r.UpdateType != tagcheck.UpdateUnknown {
				fmt.Printf(" (%s)", r.UpdateType)
			}
			fmt.Printf("\n\n")
		}
	}

	fmt.Printf("\n%s\n", styles.bold.Render("Summary:"))
	fmt.Printf("  Total checked: %d\n", len(results))
	fmt.Printf("  Up-to-date:    %s\n", styles.good.Render(fmt.Sprintf("%d", current)))
	fmt.Printf("  Updates:       %s\n", styles.warn.Render(fmt.Sprintf("%d", updates)))
	fmt.Printf("  Errors:        %s\n", styles.bad.Render(fmt.Sprintf("%d", errors)))
}
