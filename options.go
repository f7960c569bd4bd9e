package tagcheck

import "time"

// Status classifies one checked source.
type Status string

const (
	// StatusUpToDate means the latest tag equals the current value byte
	// for byte.
	StatusUpToDate Status = "up-to-date"
	// StatusUpdateAvailable means a latest tag exists and differs from
	// the current value, even if only in formatting.
	StatusUpdateAvailable Status = "update-available"
	// StatusUnknown means enumeration succeeded but returned no tags,
	// so there is nothing to compare against.
	StatusUnknown Status = "unknown"
	// StatusError means the enumeration command failed or timed out.
	StatusError Status = "error"
)

// String returns the wire form of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus maps free-form tokens to a Status. Unrecognized input
// yields StatusUnknown.
//
// Supported aliases (case-insensitive):
//
//	up-to-date:       "up-to-date", "uptodate", "current", "ok"
//	update-available: "update-available", "update", "outdated", "stale"
//	error:            "error", "failed", "fail"
//	unknown:          everything else
func ParseStatus(s string) Status {
	switch toTok(s) {
	case "up-to-date", "uptodate", "current", "ok":
		return StatusUpToDate

	case "update-available", "update", "outdated", "stale":
		return StatusUpdateAvailable

	case "error", "failed", "fail":
		return StatusError

	default:
		return StatusUnknown
	}
}

// CheckOptions configures a Check run.
type CheckOptions struct {
	// Runner executes enumeration commands. Nil means a ShellRunner
	// with Timeout.
	Runner TagLister

	// Timeout bounds each enumeration command when the default runner
	// is used. Zero means DefaultTimeout.
	Timeout time.Duration

	// Progress, when set, is called just before each source is checked.
	// Display hook only; it must not mutate the source.
	Progress func(TagSource)

	// OnResult, when set, is called right after each source resolves,
	// before the next one starts. Display hook only.
	OnResult func(CheckResult)
}

// runner returns the configured TagLister or the default ShellRunner.
func (o CheckOptions) runner() TagLister {
	if o.Runner != nil {
		return o.Runner
	}

	return ShellRunner{Timeout: o.Timeout}
}
