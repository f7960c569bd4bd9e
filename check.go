package tagcheck

import "context"

// Check runs every source in order and returns one CheckResult each.
//
// Execution is deliberately sequential: enumeration commands talk to
// rate-limited registries, and document order keeps output stable. A
// per-source failure lands in that source's result as StatusError and
// never aborts the batch. The context is consulted between items, not
// mid-subprocess; on cancellation Check returns the results gathered so
// far together with ctx.Err().
func Check(ctx context.Context, sources []TagSource, opt CheckOptions) ([]CheckResult, error) {
	runner := opt.runner()

	results := make([]CheckResult, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		if opt.Progress != nil {
			opt.Progress(src)
		}

		tags, err := runner.ListTags(ctx, src.Command)

		res := Resolve(src, tags, err)
		if opt.OnResult != nil {
			opt.OnResult(res)
		}

		results = append(results, res)
	}

	return results, nil
}
