// Package mangle backs the knowledge-base port with a Google Mangle
// (Datalog) fact store.
//
// The core only asks for assert-and-membership, which maps directly onto
// the fact store's Add/Contains. Using a real logic engine here proves the
// ports.KnowledgeBase abstraction holds up against an inference-capable
// backend, and leaves the door open to rule-based domain axioms without
// touching the engine.
package mangle

import (
	"strings"

	"github.com/google/mangle/ast"
	"github.com/google/mangle/factstore"

	"github.com/aretw0/skyplan/pkg/domain"
	"github.com/aretw0/skyplan/pkg/ports"
)

// KB is a KnowledgeBase implemented on a Mangle in-memory fact store.
type KB struct {
	store factstore.SimpleInMemoryStore
}

var _ ports.KnowledgeBase = (*KB)(nil)

// New creates an empty Datalog-backed knowledge base.
func New() *KB {
	return &KB{store: factstore.NewSimpleInMemoryStore()}
}

// Tell asserts the given positive literals as ground facts.
func (k *KB) Tell(fluents []domain.Fluent) error {
	for _, f := range fluents {
		k.store.Add(atom(f))
	}
	return nil
}

// Contains reports whether the literal is present in the fact store.
func (k *KB) Contains(f domain.Fluent) bool {
	return k.store.Contains(atom(f))
}

// atom converts a fluent into a ground Mangle atom. Predicate symbols are
// lowercased to satisfy Mangle's naming rules; arguments become string
// constants.
func atom(f domain.Fluent) ast.Atom {
	return ast.Atom{
		Predicate: ast.PredicateSym{Symbol: strings.ToLower(f.Predicate), Arity: 2},
		Args:      []ast.BaseTerm{ast.String(f.Subject), ast.String(f.Object)},
	}
}
