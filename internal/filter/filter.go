// Package filter implements composable query predicates over reconstructed
// sessions and events, generalized from the teacher's rules-engine predicate
// type (core/policyengine/engine/predicates.go) to the two record shapes
// this repository cares about: FileSession and FileEvent.
package filter

// Predicate is a functional test over a value of type R.
type Predicate[R any] func(R) bool

// Criterion wraps a Predicate so it can be combined with And/Or/Not.
type Criterion[R any] struct {
	Pred Predicate[R]
}

// Eval applies the criterion to r.
func (c Criterion[R]) Eval(r R) bool {
	return c.Pred(r)
}

// And computes the conjunction of two criteria.
func (c Criterion[R]) And(other Criterion[R]) Criterion[R] {
	return Criterion[R]{func(r R) bool {
		return c.Eval(r) && other.Eval(r)
	}}
}

// Or computes the disjunction of two criteria.
func (c Criterion[R]) Or(other Criterion[R]) Criterion[R] {
	return Criterion[R]{func(r R) bool {
		return c.Eval(r) || other.Eval(r)
	}}
}

// Not negates a criterion.
func (c Criterion[R]) Not() Criterion[R] {
	return Criterion[R]{func(r R) bool {
		return !c.Eval(r)
	}}
}

// All combines criteria with And, defaulting to always-true on an empty set.
func All[R any](criteria ...Criterion[R]) Criterion[R] {
	return Criterion[R]{func(r R) bool {
		for _, c := range criteria {
			if !c.Eval(r) {
				return false
			}
		}
		return true
	}}
}

// Any combines criteria with Or, defaulting to always-false on an empty set.
func Any[R any](criteria ...Criterion[R]) Criterion[R] {
	return Criterion[R]{func(r R) bool {
		for _, c := range criteria {
			if c.Eval(r) {
				return true
			}
		}
		return false
	}}
}
