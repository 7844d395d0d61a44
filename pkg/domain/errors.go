package domain

import "errors"

// ErrNotApplicable is returned when Result is asked to apply an action whose
// preconditions do not hold in the given state. This is a contract violation
// by the caller, surfaced loudly instead of silently producing a wrong state.
var ErrNotApplicable = errors.New("action not applicable in state")

// ErrUnknownObject is returned at construction when an initial or goal fluent
// references a cargo, plane or airport the domain never declared.
var ErrUnknownObject = errors.New("fluent references undeclared object")

// ErrBadEncoding is returned when an encoded state does not match the
// problem's fluent order (wrong length or a byte other than 'T'/'F').
var ErrBadEncoding = errors.New("encoded state does not match fluent order")

// ErrGoalUnreachable is returned by the planning-graph oracle when a goal
// fluent never appears at any level of the relaxed graph.
var ErrGoalUnreachable = errors.New("goal fluent unreachable in relaxed planning graph")
