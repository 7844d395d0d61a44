package ports

import "github.com/aretw0/skyplan/pkg/domain"

// KnowledgeBase is the literal-entailment collaborator used by the
// transition engine. The core only ever needs two operations: assert a set
// of positive ground literals and ask whether a literal is contained. No
// general resolution or inference is required, so a set-backed
// implementation is sufficient; the port exists so a real logic engine
// (e.g. a Datalog fact store) can be plugged in without touching the core.
type KnowledgeBase interface {
	// Tell asserts the given positive literals.
	Tell(fluents []domain.Fluent) error

	// Contains reports whether the literal is entailed by the asserted set.
	Contains(f domain.Fluent) bool
}

// KnowledgeBaseFactory produces a fresh, empty KnowledgeBase. The engine
// builds one per applicability scan, mirroring the one-KB-per-query shape
// of the original formulation.
type KnowledgeBaseFactory func() KnowledgeBase
