package result

// Provider supplies a Result[Unit] to Collect. It is either an already-built
// result (From) or a factory invoked lazily when Collect visits it (Lazy).
type Provider func() Result[Unit]

// From wraps an already-built result as a Provider.
func From(r Result[Unit]) Provider {
	return func() Result[Unit] {
		return r
	}
}

// Lazy wraps a factory as a Provider. The factory runs only if Collect
// actually visits it, so branches after a fail-fast stop are never evaluated.
func Lazy(factory func() Result[Unit]) Provider {
	if factory == nil {
		panic("result: Lazy requires a non-nil factory")
	}
	return factory
}

// Collect visits the providers in order and aggregates their outcomes.
// With failFast set, the first failure is returned as-is and the remaining
// providers are never invoked. Otherwise every provider runs and all errors
// are gathered, in visit order, into a single failure; the first error seen
// becomes the primary one. No providers, or no failures, yields Done().
func Collect(failFast bool, providers ...Provider) Result[Unit] {
	var errs []*Error
	for _, p := range providers {
		if p == nil {
			panic("result: Collect requires non-nil providers")
		}
		r := p()
		if r.IsOk() {
			continue
		}
		if failFast {
			return r
		}
		errs = append(errs, r.Errors()...)
	}
	if len(errs) == 0 {
		return Done()
	}
	return Fail[Unit](errs[0], errs[1:]...)
}
