package planninggraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/skyplan/internal/grounder"
	"github.com/aretw0/skyplan/internal/testutils"
	"github.com/aretw0/skyplan/pkg/domain"
)

func TestLevelSumMiniProblem(t *testing.T) {
	cargos, planes, airports, initial, goal := testutils.MiniProblem()
	actions := grounder.Ground(cargos, planes, airports)

	// At(C1, JFK) needs Load at level 1 and Unload at level 2 in the
	// relaxed graph, so its first level is 2.
	g := New(actions, goal)
	got, err := g.LevelSum(initial.Pos)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestLevelSumAddsPerGoalFluent(t *testing.T) {
	cargos, planes, airports, initial, _ := testutils.MiniProblem()
	actions := grounder.Ground(cargos, planes, airports)

	// At(P1, JFK) is one Fly away (level 1), At(C1, JFK) is level 2.
	g := New(actions, []domain.Fluent{
		domain.At("C1", "JFK"),
		domain.At("P1", "JFK"),
	})
	got, err := g.LevelSum(initial.Pos)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestLevelSumSatisfiedGoalIsZero(t *testing.T) {
	cargos, planes, airports, initial, _ := testutils.MiniProblem()
	actions := grounder.Ground(cargos, planes, airports)

	g := New(actions, []domain.Fluent{domain.At("C1", "SFO")})
	got, err := g.LevelSum(initial.Pos)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestLevelSumEmptyGoal(t *testing.T) {
	cargos, planes, airports, initial, _ := testutils.MiniProblem()
	actions := grounder.Ground(cargos, planes, airports)

	g := New(actions, nil)
	got, err := g.LevelSum(initial.Pos)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestLevelSumUnreachableGoal(t *testing.T) {
	_, _, _, initial, goal := testutils.MiniProblem()

	// With no actions the graph levels off immediately.
	g := New(nil, goal)
	_, err := g.LevelSum(initial.Pos)
	assert.ErrorIs(t, err, domain.ErrGoalUnreachable)
}

func TestLevelSumIgnoresDeleteEffects(t *testing.T) {
	// One action deletes its own precondition. The relaxation must still
	// chain through it: p -> a1 adds q (deleting p), a2 needs p and q.
	p := domain.Fluent{Predicate: "At", Subject: "X", Object: "A"}
	q := domain.Fluent{Predicate: "At", Subject: "X", Object: "B"}
	r := domain.Fluent{Predicate: "At", Subject: "X", Object: "C"}

	actions := []domain.GroundAction{
		{
			Name:       "Hop",
			Args:       []string{"X", "A", "B"},
			PrecondPos: []domain.Fluent{p},
			AddEffects: []domain.Fluent{q},
			DelEffects: []domain.Fluent{p},
		},
		{
			Name:       "Join",
			Args:       []string{"X"},
			PrecondPos: []domain.Fluent{p, q},
			AddEffects: []domain.Fluent{r},
		},
	}

	g := New(actions, []domain.Fluent{r})
	got, err := g.LevelSum([]domain.Fluent{p})
	require.NoError(t, err)
	assert.Equal(t, 2, got, "p must remain available after Hop deletes it")
}
