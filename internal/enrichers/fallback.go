package enrichers

import "context"

// TryEach calls lookup with each identifier in order and returns the first
// successful result. Failures are handed to onFailure (which may be nil) and
// never abort the iteration; identifiers after the first success are not
// tried. When every identifier fails, or ctx is done, the zero value and
// false are returned.
func TryEach[T any](ctx context.Context, identifiers []string, lookup func(context.Context, string) (T, error), onFailure func(identifier string, err error)) (T, bool) {
	var zero T
	for _, id := range identifiers {
		if ctx.Err() != nil {
			return zero, false
		}

		result, err := lookup(ctx, id)
		if err == nil {
			return result, true
		}
		if onFailure != nil {
			onFailure(id, err)
		}
	}
	return zero, false
}
