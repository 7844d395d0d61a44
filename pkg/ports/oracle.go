package ports

import "github.com/aretw0/skyplan/pkg/domain"

// CostOracle estimates the remaining cost from a state to the goal. It is
// the planning-graph collaborator of the level-sum heuristic: constructed
// once per problem (it already knows the grounded actions and the goal),
// then queried with the positive fluents of the state under evaluation.
//
// Implementations may be expensive per call; the heuristic layer memoizes
// results, so an oracle must be deterministic for a given input.
type CostOracle interface {
	// LevelSum returns a non-negative estimate of the number of actions
	// still required to satisfy every goal fluent, starting from a state
	// whose positive literals are exactly positive.
	LevelSum(positive []domain.Fluent) (int, error)
}
