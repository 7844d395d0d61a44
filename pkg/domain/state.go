package domain

// WorldState is a pair of fluent sets: Pos holds fluents asserted true,
// Neg holds fluents asserted false. Within a well-formed state the two
// slices are disjoint; callers must not assert a fluent on both sides.
// Slices (not maps) keep the declaration order, which defines the
// FluentOrder of the owning problem.
type WorldState struct {
	Pos []Fluent
	Neg []Fluent
}

// NewWorldState creates a state from explicit positive and negative fluents.
func NewWorldState(pos, neg []Fluent) WorldState {
	return WorldState{Pos: pos, Neg: neg}
}

// FluentOrder returns the canonical bit ordering derived from this state:
// positives first, then negatives. Problems derive their order from the
// initial state exactly once and never mutate it.
func (s WorldState) FluentOrder() FluentOrder {
	order := make(FluentOrder, 0, len(s.Pos)+len(s.Neg))
	order = append(order, s.Pos...)
	order = append(order, s.Neg...)
	return order
}

// FluentOrder is the fixed ordered sequence of all fluents of a problem.
// It defines the slot position of every fluent for the problem's lifetime.
// Two encoded states are only comparable under the same order.
type FluentOrder []Fluent

// IndexOf returns the slot of f, or -1 if f is not part of the order.
func (o FluentOrder) IndexOf(f Fluent) int {
	for i, g := range o {
		if g == f {
			return i
		}
	}
	return -1
}

// Contains reports whether f has a slot in the order.
func (o FluentOrder) Contains(f Fluent) bool {
	return o.IndexOf(f) >= 0
}

// EncodedState is the canonical positional encoding of a world state:
// one 'T' or 'F' byte per FluentOrder slot. It is a plain comparable
// value, safe to copy and to use as a map key, with no back-reference
// to the problem that produced it.
type EncodedState string
