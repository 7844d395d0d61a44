// Package codec maps between WorldStates and their positional encoding.
//
// The encoding is the single point of coupling between grounding, search
// and heuristics: slot i of an encoded state is 'T' iff order[i] is in the
// state's positive set. The order is always passed explicitly, never
// inferred from ambient state, so states encoded under different problems
// can never be confused by accident.
package codec

import (
	"fmt"

	"github.com/aretw0/skyplan/pkg/domain"
)

const (
	slotTrue  = 'T'
	slotFalse = 'F'
)

// Encode produces the positional encoding of s under order. Fluents absent
// from s.Pos encode as false, which is the expected closed-world default.
func Encode(s domain.WorldState, order domain.FluentOrder) domain.EncodedState {
	pos := make(map[domain.Fluent]struct{}, len(s.Pos))
	for _, f := range s.Pos {
		pos[f] = struct{}{}
	}

	buf := make([]byte, len(order))
	for i, f := range order {
		if _, ok := pos[f]; ok {
			buf[i] = slotTrue
		} else {
			buf[i] = slotFalse
		}
	}
	return domain.EncodedState(buf)
}

// Decode reconstructs a total WorldState from an encoded state: every
// fluent of the order lands in exactly one of Pos/Neg. It fails if the
// encoding was not produced under an order of the same length, or carries
// a byte other than 'T'/'F'.
func Decode(e domain.EncodedState, order domain.FluentOrder) (domain.WorldState, error) {
	if len(e) != len(order) {
		return domain.WorldState{}, fmt.Errorf("%w: encoded length %d, order length %d",
			domain.ErrBadEncoding, len(e), len(order))
	}

	s := domain.WorldState{
		Pos: make([]domain.Fluent, 0, len(order)),
		Neg: make([]domain.Fluent, 0, len(order)),
	}
	for i, f := range order {
		switch e[i] {
		case slotTrue:
			s.Pos = append(s.Pos, f)
		case slotFalse:
			s.Neg = append(s.Neg, f)
		default:
			return domain.WorldState{}, fmt.Errorf("%w: slot %d holds %q", domain.ErrBadEncoding, i, e[i])
		}
	}
	return s, nil
}
