package tagcheck

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestLatest_NumericOrder(t *testing.T) {
	t.Parallel()

	got, ok := Latest([]string{"16.9", "16.11", "16.10"})
	if !ok || got != "16.11" {
		t.Fatalf("Latest = %q, %v; want %q, true", got, ok, "16.11")
	}
}

func TestLatest_OpaqueWins(t *testing.T) {
	t.Parallel()

	got, ok := Latest([]string{"1.2", "RELEASE.2023-12-23T07-19-11Z"})
	if !ok || got != "RELEASE.2023-12-23T07-19-11Z" {
		t.Fatalf("Latest = %q, %v; want the opaque tag", got, ok)
	}
}

func TestLatest_Empty(t *testing.T) {
	t.Parallel()

	if got, ok := Latest(nil); ok || got != "" {
		t.Fatalf("Latest(nil) = %q, %v; want empty, false", got, ok)
	}
}

func TestLatest_StableTies(t *testing.T) {
	t.Parallel()

	// "1.2" and "v1.2" share a key; input order decides.
	if got, _ := Latest([]string{"1.2", "v1.2"}); got != "1.2" {
		t.Fatalf("Latest = %q; want first of the tied tags", got)
	}
	if got, _ := Latest([]string{"v1.2", "1.2"}); got != "v1.2" {
		t.Fatalf("Latest = %q; want first of the tied tags", got)
	}
}

func TestLatest_InputUntouched(t *testing.T) {
	t.Parallel()

	in := []string{"1.0", "3.0", "2.0"}
	want := []string{"1.0", "3.0", "2.0"}

	if got, _ := Latest(in); got != "3.0" {
		t.Fatalf("Latest = %q; want 3.0", got)
	}
	if !reflect.DeepEqual(in, want) {
		t.Fatalf("Latest mutated its input: %v", in)
	}
}

func TestResolve_UpdateAvailable(t *testing.T) {
	t.Parallel()

	src := TagSource{Variable: "gitea_image_tag", CurrentValue: "16.9", Command: "skopeo list-tags x", Line: 3}
	res := Resolve(src, []string{"16.9", "16.11"}, nil)

	if res.Status != StatusUpdateAvailable {
		t.Fatalf("status = %q; want %q", res.Status, StatusUpdateAvailable)
	}
	if res.LatestValue == nil || *res.LatestValue != "16.11" {
		t.Fatalf("latest = %v; want 16.11", res.LatestValue)
	}
	if !reflect.DeepEqual(res.AllTags, []string{"16.9", "16.11"}) {
		t.Fatalf("all_tags = %v; want raw list", res.AllTags)
	}
}

func TestResolve_UpToDate(t *testing.T) {
	t.Parallel()

	src := TagSource{Variable: "db_image_tag", CurrentValue: "2.0.0", Command: "skopeo list-tags y", Line: 1}
	res := Resolve(src, []string{"2.0.0"}, nil)

	if res.Status != StatusUpToDate {
		t.Fatalf("status = %q; want %q", res.Status, StatusUpToDate)
	}
	if res.LatestValue == nil || *res.LatestValue != "2.0.0" {
		t.Fatalf("latest = %v; want 2.0.0", res.LatestValue)
	}
	if res.UpdateType != "" {
		t.Fatalf("update type = %q; want empty for up-to-date", res.UpdateType)
	}
}

func TestResolve_EmptyIsUnknown(t *testing.T) {
	t.Parallel()

	res := Resolve(TagSource{Variable: "x_image_tag", CurrentValue: "1"}, nil, nil)

	if res.Status != StatusUnknown {
		t.Fatalf("status = %q; want %q", res.Status, StatusUnknown)
	}
	if res.LatestValue != nil {
		t.Fatalf("latest = %q; want nil", *res.LatestValue)
	}
	if len(res.AllTags) != 0 {
		t.Fatalf("all_tags = %v; want empty", res.AllTags)
	}
}

func TestResolve_RunnerError(t *testing.T) {
	t.Parallel()

	res := Resolve(
		TagSource{Variable: "x_image_tag", CurrentValue: "1"},
		[]string{"ignored"},
		errors.New("exit code 2"),
	)

	if res.Status != StatusError {
		t.Fatalf("status = %q; want %q", res.Status, StatusError)
	}
	if res.LatestValue != nil {
		t.Fatalf("latest = %q; want nil on error", *res.LatestValue)
	}
	if len(res.AllTags) != 0 {
		t.Fatalf("all_tags = %v; want empty on error", res.AllTags)
	}
}

func TestResolve_KeepsLastTenTags(t *testing.T) {
	t.Parallel()

	tags := make([]string, 0, 12)
	for i := 1; i <= 12; i++ {
		tags = append(tags, fmt.Sprintf("1.0.%d", i))
	}

	res := Resolve(TagSource{Variable: "x_image_tag", CurrentValue: "1.0.12"}, tags, nil)

	// Tail of the raw output in original order, not the ten highest.
	if !reflect.DeepEqual(res.AllTags, tags[2:]) {
		t.Fatalf("all_tags = %v; want last ten of the raw list", res.AllTags)
	}
}

func TestResolve_ComparesAgainstLatestOnly(t *testing.T) {
	t.Parallel()

	// Current matches the computed latest exactly, even though other
	// tags exist: up-to-date by definition.
	res := Resolve(TagSource{Variable: "x_image_tag", CurrentValue: "2.0"}, []string{"1.0", "2.0"}, nil)
	if res.Status != StatusUpToDate {
		t.Fatalf("status = %q; want %q", res.Status, StatusUpToDate)
	}

	// A cosmetic difference against latest still counts as an update.
	res = Resolve(TagSource{Variable: "x_image_tag", CurrentValue: "2.0"}, []string{"v2.0"}, nil)
	if res.Status != StatusUpdateAvailable {
		t.Fatalf("status = %q; want %q for formatting-only difference", res.Status, StatusUpdateAvailable)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	src := TagSource{Variable: "x_image_tag", CurrentValue: "16.9", Command: "skopeo list-tags x", Line: 7}
	tags := []string{"16.9", "16.11", "RELEASE.2023-12-23T07-19-11Z"}

	first := Resolve(src, tags, nil)
	second := Resolve(src, tags, nil)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Resolve not idempotent:\n%#v\n%#v", first, second)
	}
}
