// Package check provides a validation chain over a subject Result[T]: named
// predicate rules are appended with Ensure/And and folded by Validate or
// ValidateAll into either the untouched subject or a single aggregate
// failure whose details list the failing rules in append order.
//
// Validate evaluates rules one by one; ValidateAll fires them all
// concurrently and joins before reporting, a deliberate parallel region
// bounded by a single join point. Either way an already-failed subject
// short-circuits and no rule runs, matching Bind's law.
package check
