// Package planninggraph implements the level-sum cost oracle on a relaxed
// planning graph.
//
// The relaxation drops delete lists: fluents only ever accumulate, so the
// graph is expanded level by level until it stops growing. The level-sum
// estimate adds up, over all goal fluents, the first level at which each
// becomes reachable. The estimate is cheap to build relative to real
// search but far more informative than counting unsatisfied goals.
package planninggraph

import (
	"fmt"

	"github.com/aretw0/skyplan/pkg/domain"
	"github.com/aretw0/skyplan/pkg/ports"
)

// Graph is a per-problem oracle: it holds the grounded action list and the
// goal, and is queried with the positive fluents of the state under
// evaluation.
type Graph struct {
	actions []domain.GroundAction
	goal    []domain.Fluent
}

var _ ports.CostOracle = (*Graph)(nil)

// New creates an oracle for one problem's actions and goal.
func New(actions []domain.GroundAction, goal []domain.Fluent) *Graph {
	return &Graph{actions: actions, goal: goal}
}

// LevelSum expands the relaxed graph from the given positive literals and
// sums the first level at which each goal fluent appears. It returns
// domain.ErrGoalUnreachable if the graph levels off with a goal fluent
// still missing.
func (g *Graph) LevelSum(positive []domain.Fluent) (int, error) {
	// firstLevel[f] is the earliest level at which f becomes true.
	firstLevel := make(map[domain.Fluent]int, len(positive))
	for _, f := range positive {
		firstLevel[f] = 0
	}

	remaining := make(map[domain.Fluent]struct{}, len(g.goal))
	for _, f := range g.goal {
		if _, ok := firstLevel[f]; !ok {
			remaining[f] = struct{}{}
		}
	}

	for level := 1; len(remaining) > 0; level++ {
		grew := false
		for _, action := range g.actions {
			if !relaxedApplicable(action, firstLevel, level-1) {
				continue
			}
			for _, f := range action.AddEffects {
				if _, known := firstLevel[f]; known {
					continue
				}
				firstLevel[f] = level
				delete(remaining, f)
				grew = true
			}
		}
		// Leveled off: every remaining goal fluent is unreachable.
		if !grew {
			for f := range remaining {
				return 0, fmt.Errorf("%w: %s", domain.ErrGoalUnreachable, f)
			}
		}
	}

	sum := 0
	for _, f := range g.goal {
		sum += firstLevel[f]
	}
	return sum, nil
}

// relaxedApplicable reports whether every positive precondition of the
// action is available at or before the given level. Negative preconditions
// are dropped by the relaxation (the schemas here have none anyway).
func relaxedApplicable(action domain.GroundAction, firstLevel map[domain.Fluent]int, level int) bool {
	for _, clause := range action.PrecondPos {
		at, ok := firstLevel[clause]
		if !ok || at > level {
			return false
		}
	}
	return true
}
