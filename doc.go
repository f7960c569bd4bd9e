/*
Package tagcheck checks whether container image tag references declared
in a configuration document are current.

The package is registry-agnostic: it never speaks a registry protocol
itself. Each declaration carries its own enumeration command (typically
"skopeo list-tags ... | jq ..."), and tagcheck runs that command, sorts
the returned tags, and classifies the declared value against the latest
one.

Typical flow:

 1. LoadSources (or Extract on raw text) to collect TagSource entries.
 2. Check to run every enumeration command sequentially and resolve a
    CheckResult per source.
 3. Render or serialize the results elsewhere.

Version ordering notes:
  - A leading "v", "version-v", or "version-" prefix is stripped before
    parsing (first matching prefix wins, at most one strip).
  - The leading numeric run of a tag, split on "." / "-" / "_", becomes
    an integer tuple compared position by position; a strict prefix is
    lesser ("16.9" < "16.11" < "16.11.0").
  - Tags without a numeric run (e.g. "RELEASE.2023-12-23T07-19-11Z")
    take an opaque key that ranks above every numeric key, so they win
    "latest" whenever present. Opaque keys order among themselves by
    their original string.

Usage example:

	srcs, err := tagcheck.LoadSources(afero.NewOsFs(), "apps.yml")
	if err != nil {
		return err
	}

	results, err := tagcheck.Check(context.Background(), srcs, tagcheck.CheckOptions{
		Timeout: 30 * time.Second,
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Println(r.Variable, r.Status)
	}
*/
package tagcheck
