package tagcheck

import "sort"

// keepTags is how many raw tags a CheckResult retains for inspection:
// the tail of the enumeration output, in the order the tool emitted it.
const keepTags = 10

// CheckResult is the outcome of checking one source. Produced once per
// source per run and never mutated.
type CheckResult struct {
	TagSource

	// LatestValue is the tag selected as latest, nil when enumeration
	// failed or returned nothing.
	LatestValue *string `json:"latest_value"`

	// Status classifies CurrentValue against LatestValue.
	Status Status `json:"status"`

	// UpdateType grades an available update (major/minor/patch) when
	// both versions parse as SemVer. Empty unless an update exists.
	UpdateType UpdateType `json:"update_type,omitempty"`

	// AllTags is the last keepTags entries of the raw enumeration
	// output, original order. Empty when enumeration failed.
	AllTags []string `json:"all_tags"`
}

// Latest picks the highest-ranked tag: stable descending sort by
// ParseKey, first element wins. Opaque (unparseable) tags rank above
// every numeric tag, so they win whenever present; equal keys keep
// their input order. Returns "", false for an empty list.
func Latest(tags []string) (string, bool) {
	if len(tags) == 0 {
		return "", false
	}

	type item struct {
		key Key
		raw string
	}

	arr := make([]item, 0, len(tags))
	for _, t := range tags {
		arr = append(arr, item{key: ParseKey(t), raw: t})
	}

	sort.SliceStable(arr, func(i, j int) bool {
		return arr[i].key.Compare(arr[j].key) > 0
	})

	return arr[0].raw, true
}

// Resolve classifies one source against its enumeration outcome. Pass
// the runner's error (if any) as runErr; tags are ignored in that case.
//
// Pure function of its inputs: resolving the same outcome twice yields
// the same result.
func Resolve(src TagSource, tags []string, runErr error) CheckResult {
	res := CheckResult{
		TagSource: src,
		AllTags:   []string{},
	}

	if runErr != nil {
		res.Status = StatusError
		return res
	}

	latest, ok := Latest(tags)
	if !ok {
		res.Status = StatusUnknown
		return res
	}

	res.LatestValue = &latest
	res.AllTags = lastStrings(tags, keepTags)

	// Exact string comparison on purpose: a purely cosmetic difference
	// (say, a "v" prefix) still counts as an available update.
	if latest == src.CurrentValue {
		res.Status = StatusUpToDate
		return res
	}

	res.Status = StatusUpdateAvailable
	res.UpdateType = Severity(src.CurrentValue, latest)

	return res
}
