// Package engine implements the transition semantics of a grounded
// planning problem: which actions are applicable in a state, what state an
// action produces, and whether a state satisfies the goal.
//
// All operations are pure and synchronous; the engine only ever reads the
// immutable problem data it was constructed with, so it may be shared by
// any number of concurrent search frontiers.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/skyplan/internal/codec"
	"github.com/aretw0/skyplan/internal/logging"
	"github.com/aretw0/skyplan/pkg/adapters/kb"
	"github.com/aretw0/skyplan/pkg/domain"
	"github.com/aretw0/skyplan/pkg/ports"
)

// Engine answers applicability, successor and goal queries against one
// problem's fluent order, grounded action list and goal.
type Engine struct {
	order   domain.FluentOrder
	actions []domain.GroundAction
	goal    []domain.Fluent
	newKB   ports.KnowledgeBaseFactory
	logger  *slog.Logger
}

// Option configures the engine.
type Option func(*Engine)

// WithKnowledgeBase sets the factory for the entailment backend used by
// applicability and goal tests. Defaults to the set-backed implementation.
func WithKnowledgeBase(factory ports.KnowledgeBaseFactory) Option {
	return func(e *Engine) {
		if factory != nil {
			e.newKB = factory
		}
	}
}

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine over an immutable problem description. The order,
// actions and goal slices must not be mutated afterwards.
func New(order domain.FluentOrder, actions []domain.GroundAction, goal []domain.Fluent, opts ...Option) *Engine {
	e := &Engine{
		order:   order,
		actions: actions,
		goal:    goal,
		newKB:   func() ports.KnowledgeBase { return kb.New() },
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// tell builds a fresh knowledge base holding the positive literals of the
// decoded state. One KB per query keeps the engine stateless.
func (e *Engine) tell(state domain.EncodedState) (ports.KnowledgeBase, error) {
	decoded, err := codec.Decode(state, e.order)
	if err != nil {
		return nil, err
	}
	base := e.newKB()
	if err := base.Tell(decoded.Pos); err != nil {
		return nil, fmt.Errorf("failed to assert state literals: %w", err)
	}
	return base, nil
}

// applicable reports whether the action's preconditions hold against the
// asserted positive literals. Both scans short-circuit: the negative scan
// stops at the first violated literal, the positive scan at the first
// missing one.
func applicable(action domain.GroundAction, base ports.KnowledgeBase) bool {
	for _, clause := range action.PrecondNeg {
		if base.Contains(clause) {
			return false
		}
	}
	for _, clause := range action.PrecondPos {
		if !base.Contains(clause) {
			return false
		}
	}
	return true
}

// Applicable returns every grounded action applicable in state, in the
// grounder's generation order.
func (e *Engine) Applicable(state domain.EncodedState) ([]domain.GroundAction, error) {
	base, err := e.tell(state)
	if err != nil {
		return nil, err
	}

	var possible []domain.GroundAction
	for _, action := range e.actions {
		if applicable(action, base) {
			possible = append(possible, action)
		}
	}

	e.logger.Debug("enumerated applicable actions",
		"total", len(e.actions), "applicable", len(possible))
	return possible, nil
}

// IsApplicable reports whether a single action is applicable in state.
func (e *Engine) IsApplicable(action domain.GroundAction, state domain.EncodedState) (bool, error) {
	base, err := e.tell(state)
	if err != nil {
		return false, err
	}
	return applicable(action, base), nil
}

// Result computes the successor of state under action. Every fluent not
// mentioned by the action's effects keeps its truth value (the frame
// condition); delete effects dominate stale positives and add effects
// dominate stale negatives, the two passes being independent so the
// effects apply simultaneously. Applying an inapplicable action is a
// caller bug and returns domain.ErrNotApplicable.
func (e *Engine) Result(state domain.EncodedState, action domain.GroundAction) (domain.EncodedState, error) {
	ok, err := e.IsApplicable(action, state)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNotApplicable, action)
	}

	old, err := codec.Decode(state, e.order)
	if err != nil {
		return "", err
	}

	adds := fluentSet(action.AddEffects)
	dels := fluentSet(action.DelEffects)

	var next domain.WorldState

	// pos' = (pos - del) + add
	seen := make(map[domain.Fluent]struct{}, len(old.Pos)+len(action.AddEffects))
	for _, f := range old.Pos {
		if _, deleted := dels[f]; !deleted {
			next.Pos = append(next.Pos, f)
			seen[f] = struct{}{}
		}
	}
	for _, f := range action.AddEffects {
		if _, dup := seen[f]; !dup {
			next.Pos = append(next.Pos, f)
			seen[f] = struct{}{}
		}
	}

	// neg' = (neg - add) + del
	seen = make(map[domain.Fluent]struct{}, len(old.Neg)+len(action.DelEffects))
	for _, f := range old.Neg {
		if _, added := adds[f]; !added {
			next.Neg = append(next.Neg, f)
			seen[f] = struct{}{}
		}
	}
	for _, f := range action.DelEffects {
		if _, dup := seen[f]; !dup {
			next.Neg = append(next.Neg, f)
			seen[f] = struct{}{}
		}
	}

	return codec.Encode(next, e.order), nil
}

// IsGoal reports whether every goal fluent holds in state. An empty goal
// is trivially satisfied.
func (e *Engine) IsGoal(state domain.EncodedState) (bool, error) {
	base, err := e.tell(state)
	if err != nil {
		return false, err
	}
	for _, clause := range e.goal {
		if !base.Contains(clause) {
			return false, nil
		}
	}
	return true, nil
}

func fluentSet(fluents []domain.Fluent) map[domain.Fluent]struct{} {
	set := make(map[domain.Fluent]struct{}, len(fluents))
	for _, f := range fluents {
		set[f] = struct{}{}
	}
	return set
}
