package domain

import (
	"fmt"
	"strings"
)

// Fluent is a ground atomic proposition about the world, e.g. "At(C1, SFO)"
// or "In(C1, P1)". Identity is structural: two fluents are equal iff their
// predicate and both arguments match, so a Fluent can be used directly as a
// map key.
type Fluent struct {
	Predicate string
	Subject   string
	Object    string
}

// Predicate names used by the air-cargo schemas.
const (
	PredicateAt = "At"
	PredicateIn = "In"
)

// At builds a location fluent: thing (cargo or plane) is at airport.
func At(thing, airport string) Fluent {
	return Fluent{Predicate: PredicateAt, Subject: thing, Object: airport}
}

// In builds a containment fluent: cargo is inside plane.
func In(cargo, plane string) Fluent {
	return Fluent{Predicate: PredicateIn, Subject: cargo, Object: plane}
}

// String renders the fluent in the conventional "Pred(A, B)" form.
func (f Fluent) String() string {
	return fmt.Sprintf("%s(%s, %s)", f.Predicate, f.Subject, f.Object)
}

// ParseFluent parses the "Pred(A, B)" form produced by String.
// It is used by the YAML problem-file loader.
func ParseFluent(s string) (Fluent, error) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return Fluent{}, fmt.Errorf("malformed fluent %q: want Pred(A, B)", s)
	}
	pred := strings.TrimSpace(s[:open])
	body := s[open+1 : len(s)-1]
	parts := strings.Split(body, ",")
	if len(parts) != 2 {
		return Fluent{}, fmt.Errorf("malformed fluent %q: want exactly 2 arguments", s)
	}
	return Fluent{
		Predicate: pred,
		Subject:   strings.TrimSpace(parts[0]),
		Object:    strings.TrimSpace(parts[1]),
	}, nil
}
