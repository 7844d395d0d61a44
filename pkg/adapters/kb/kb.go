// Package kb provides the default set-backed knowledge base.
//
// The planning core never needs inference beyond membership of stored
// ground literals, so a plain set satisfies the ports.KnowledgeBase
// contract. It is the zero-dependency default; see the mangle adapter for
// a real logic-engine backend behind the same port.
package kb

import (
	"github.com/aretw0/skyplan/pkg/domain"
	"github.com/aretw0/skyplan/pkg/ports"
)

// Set is a KnowledgeBase backed by a map of asserted literals.
type Set struct {
	facts map[domain.Fluent]struct{}
}

var _ ports.KnowledgeBase = (*Set)(nil)

// New creates an empty knowledge base.
func New() *Set {
	return &Set{facts: make(map[domain.Fluent]struct{})}
}

// Tell asserts the given positive literals.
func (s *Set) Tell(fluents []domain.Fluent) error {
	for _, f := range fluents {
		s.facts[f] = struct{}{}
	}
	return nil
}

// Contains reports whether the literal has been asserted.
func (s *Set) Contains(f domain.Fluent) bool {
	_, ok := s.facts[f]
	return ok
}
