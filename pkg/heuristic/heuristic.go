// Package heuristic provides the three remaining-cost estimators consumed
// by informed search: a constant baseline, the ignore-preconditions goal
// count, and the memoized planning-graph level sum.
package heuristic

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/aretw0/skyplan/internal/codec"
	"github.com/aretw0/skyplan/pkg/domain"
	"github.com/aretw0/skyplan/pkg/ports"
)

// Func estimates the number of actions remaining from state to a goal
// state. Estimates are non-negative; informed search treats them as edge
// cost lower bounds.
type Func func(ctx context.Context, state domain.EncodedState) (int, error)

// Constant always estimates 1. Admissible but uninformative; useful as a
// baseline and for algorithms that need a nonzero edge-weight proxy.
func Constant() Func {
	return func(context.Context, domain.EncodedState) (int, error) {
		return 1, nil
	}
}

// GoalCount counts the goal fluents not yet true in the state. Under the
// relaxation that ignores every precondition, each unsatisfied goal fluent
// costs at least one action to establish, so the count is an admissible
// lower bound.
func GoalCount(order domain.FluentOrder, goal []domain.Fluent) Func {
	return func(_ context.Context, state domain.EncodedState) (int, error) {
		decoded, err := codec.Decode(state, order)
		if err != nil {
			return 0, err
		}
		pos := make(map[domain.Fluent]struct{}, len(decoded.Pos))
		for _, f := range decoded.Pos {
			pos[f] = struct{}{}
		}

		count := 0
		for _, clause := range goal {
			if _, ok := pos[clause]; !ok {
				count++
			}
		}
		return count, nil
	}
}

// LevelSumOption configures the level-sum evaluator.
type LevelSumOption func(*levelSum)

// WithCache replaces the default in-memory memo cache.
func WithCache(cache ports.HeuristicCache) LevelSumOption {
	return func(h *levelSum) {
		if cache != nil {
			h.cache = cache
		}
	}
}

type levelSum struct {
	problemID string
	order     domain.FluentOrder
	oracle    ports.CostOracle
	cache     ports.HeuristicCache
	flight    singleflight.Group
}

// LevelSum delegates to the planning-graph cost oracle and memoizes its
// answers, keyed by problem identity plus the encoded state. The oracle is
// expensive and search revisits states, so cache hits never recompute;
// concurrent misses on the same key collapse into a single computation.
func LevelSum(problemID string, order domain.FluentOrder, oracle ports.CostOracle, opts ...LevelSumOption) Func {
	h := &levelSum{
		problemID: problemID,
		order:     order,
		oracle:    oracle,
		cache:     NewMemoCache(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h.estimate
}

func (h *levelSum) estimate(ctx context.Context, state domain.EncodedState) (int, error) {
	if h.oracle == nil {
		return 0, errors.New("level-sum heuristic has no cost oracle")
	}

	key := h.problemID + ":" + string(state)

	if v, ok, err := h.cache.Get(ctx, key); err != nil {
		return 0, fmt.Errorf("heuristic cache read: %w", err)
	} else if ok {
		return v, nil
	}

	v, err, _ := h.flight.Do(key, func() (any, error) {
		// Another flight may have populated the cache while we waited.
		if v, ok, err := h.cache.Get(ctx, key); err == nil && ok {
			return v, nil
		}

		decoded, err := codec.Decode(state, h.order)
		if err != nil {
			return 0, err
		}
		estimate, err := h.oracle.LevelSum(decoded.Pos)
		if err != nil {
			return 0, fmt.Errorf("cost oracle: %w", err)
		}
		if putErr := h.cache.Put(ctx, key, estimate); putErr != nil {
			return 0, fmt.Errorf("heuristic cache write: %w", putErr)
		}
		return estimate, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}
