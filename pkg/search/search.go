// Package search contains the generic graph-search drivers that consume
// the planning core's contract: initial state, applicable actions,
// successor and goal test. The core never imports this package; it is the
// "external search driver" side of the interface, kept here so the CLI and
// acceptance tests have a consumer to run.
package search

import (
	"container/heap"
	"context"
	"errors"

	"github.com/aretw0/skyplan/pkg/domain"
	"github.com/aretw0/skyplan/pkg/heuristic"
)

// Problem is the planning contract a driver explores.
type Problem interface {
	InitialState() domain.EncodedState
	Actions(state domain.EncodedState) ([]domain.GroundAction, error)
	Result(state domain.EncodedState, action domain.GroundAction) (domain.EncodedState, error)
	IsGoal(state domain.EncodedState) (bool, error)
}

// ErrNoPlan is returned when the reachable state space is exhausted
// without finding a goal state.
var ErrNoPlan = errors.New("no plan found")

// step records how a state was first reached, for plan reconstruction.
type step struct {
	parent domain.EncodedState
	action domain.GroundAction
}

// BreadthFirst explores the state graph layer by layer and returns a
// shortest plan in number of actions.
func BreadthFirst(ctx context.Context, p Problem) ([]domain.GroundAction, error) {
	start := p.InitialState()
	if ok, err := p.IsGoal(start); err != nil {
		return nil, err
	} else if ok {
		return nil, nil
	}

	frontier := []domain.EncodedState{start}
	cameFrom := map[domain.EncodedState]step{start: {parent: start}}

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := frontier[0]
		frontier = frontier[1:]

		actions, err := p.Actions(current)
		if err != nil {
			return nil, err
		}
		for _, action := range actions {
			next, err := p.Result(current, action)
			if err != nil {
				return nil, err
			}
			if _, known := cameFrom[next]; known {
				continue
			}
			cameFrom[next] = step{parent: current, action: action}

			ok, err := p.IsGoal(next)
			if err != nil {
				return nil, err
			}
			if ok {
				return reconstruct(cameFrom, start, next), nil
			}
			frontier = append(frontier, next)
		}
	}
	return nil, ErrNoPlan
}

// UniformCost is best-first search ordered by path cost alone. With the
// unit-cost actions of this domain it finds optimal plans.
func UniformCost(ctx context.Context, p Problem) ([]domain.GroundAction, error) {
	return bestFirst(ctx, p, 1, nil)
}

// AStar is best-first search ordered by path cost plus the heuristic
// estimate. With an admissible heuristic the plan is optimal.
func AStar(ctx context.Context, p Problem, h heuristic.Func) ([]domain.GroundAction, error) {
	return bestFirst(ctx, p, 1, h)
}

// Greedy is best-first search ordered by the heuristic estimate alone.
// Fast, but with no optimality guarantee.
func Greedy(ctx context.Context, p Problem, h heuristic.Func) ([]domain.GroundAction, error) {
	return bestFirst(ctx, p, 0, h)
}

// bestFirst expands states in order of gWeight*g(n) + h(n).
func bestFirst(ctx context.Context, p Problem, gWeight int, h heuristic.Func) ([]domain.GroundAction, error) {
	start := p.InitialState()

	open := &priorityQueue{}
	heap.Init(open)

	gScore := map[domain.EncodedState]int{start: 0}
	cameFrom := map[domain.EncodedState]step{start: {parent: start}}
	closed := make(map[domain.EncodedState]struct{})

	f, err := score(ctx, gWeight, 0, h, start)
	if err != nil {
		return nil, err
	}
	heap.Push(open, &item{state: start, priority: f})

	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := heap.Pop(open).(*item).state
		if _, done := closed[current]; done {
			continue // Stale queue entry
		}
		closed[current] = struct{}{}

		ok, err := p.IsGoal(current)
		if err != nil {
			return nil, err
		}
		if ok {
			return reconstruct(cameFrom, start, current), nil
		}

		actions, err := p.Actions(current)
		if err != nil {
			return nil, err
		}
		for _, action := range actions {
			next, err := p.Result(current, action)
			if err != nil {
				return nil, err
			}

			tentative := gScore[current] + 1
			if old, known := gScore[next]; known && tentative >= old {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = step{parent: current, action: action}

			f, err := score(ctx, gWeight, tentative, h, next)
			if err != nil {
				return nil, err
			}
			heap.Push(open, &item{state: next, priority: f})
		}
	}
	return nil, ErrNoPlan
}

func score(ctx context.Context, gWeight, g int, h heuristic.Func, state domain.EncodedState) (int, error) {
	f := gWeight * g
	if h != nil {
		estimate, err := h(ctx, state)
		if err != nil {
			return 0, err
		}
		f += estimate
	}
	return f, nil
}

// reconstruct walks the cameFrom tree from goal back to start.
func reconstruct(cameFrom map[domain.EncodedState]step, start, goal domain.EncodedState) []domain.GroundAction {
	var plan []domain.GroundAction
	for current := goal; current != start; current = cameFrom[current].parent {
		plan = append(plan, cameFrom[current].action)
	}
	// Reverse into execution order.
	for i, j := 0, len(plan)-1; i < j; i, j = i+1, j-1 {
		plan[i], plan[j] = plan[j], plan[i]
	}
	return plan
}

// --- Priority Queue Implementation ---

type item struct {
	state    domain.EncodedState
	priority int
	index    int
}

type priorityQueue []*item

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	n := len(*pq)
	it := x.(*item)
	it.index = n
	*pq = append(*pq, it)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[0 : n-1]
	return it
}
