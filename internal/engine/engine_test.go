package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/skyplan/internal/codec"
	"github.com/aretw0/skyplan/internal/grounder"
	"github.com/aretw0/skyplan/internal/testutils"
	"github.com/aretw0/skyplan/pkg/domain"
)

// newMiniEngine wires the mini problem through grounding and encoding.
func newMiniEngine(t *testing.T) (*Engine, domain.EncodedState, domain.FluentOrder) {
	t.Helper()

	cargos, planes, airports, initial, goal := testutils.MiniProblem()
	order := initial.FluentOrder()
	actions := grounder.Ground(cargos, planes, airports)
	return New(order, actions, goal), codec.Encode(initial, order), order
}

func findAction(t *testing.T, e *Engine, name string, args ...string) domain.GroundAction {
	t.Helper()
	want := domain.GroundAction{Name: name, Args: args}.String()
	for _, a := range e.actions {
		if a.String() == want {
			return a
		}
	}
	t.Fatalf("no ground action %s", want)
	return domain.GroundAction{}
}

func TestApplicableInitialState(t *testing.T) {
	e, start, _ := newMiniEngine(t)

	applicable, err := e.Applicable(start)
	require.NoError(t, err)

	names := make([]string, len(applicable))
	for i, a := range applicable {
		names[i] = a.String()
	}
	// The cargo can be loaded where both it and the plane stand, and the
	// plane can fly away. Nothing is unloadable yet.
	assert.Equal(t, []string{
		"Load(C1, P1, SFO)",
		"Fly(P1, SFO, JFK)",
	}, names)
}

func TestIsApplicable(t *testing.T) {
	e, start, _ := newMiniEngine(t)

	ok, err := e.IsApplicable(findAction(t, e, domain.ActionLoad, "C1", "P1", "SFO"), start)
	require.NoError(t, err)
	assert.True(t, ok)

	// The plane is not at JFK.
	ok, err = e.IsApplicable(findAction(t, e, domain.ActionFly, "P1", "JFK", "SFO"), start)
	require.NoError(t, err)
	assert.False(t, ok)

	// The cargo is not in the plane.
	ok, err = e.IsApplicable(findAction(t, e, domain.ActionUnload, "C1", "P1", "SFO"), start)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNegativePreconditionBlocks(t *testing.T) {
	e, start, _ := newMiniEngine(t)

	blocked := domain.GroundAction{
		Name:       "Probe",
		Args:       []string{"C1"},
		PrecondNeg: []domain.Fluent{domain.At("C1", "SFO")}, // true in start
	}
	ok, err := e.IsApplicable(blocked, start)
	require.NoError(t, err)
	assert.False(t, ok, "a negative precondition that is positively asserted must block")

	allowed := domain.GroundAction{
		Name:       "Probe",
		Args:       []string{"C1"},
		PrecondNeg: []domain.Fluent{domain.In("C1", "P1")}, // false in start
	}
	ok, err = e.IsApplicable(allowed, start)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResultAppliesEffects(t *testing.T) {
	e, start, order := newMiniEngine(t)

	load := findAction(t, e, domain.ActionLoad, "C1", "P1", "SFO")
	next, err := e.Result(start, load)
	require.NoError(t, err)

	decoded, err := codec.Decode(next, order)
	require.NoError(t, err)

	assert.Contains(t, decoded.Pos, domain.In("C1", "P1"), "add effect")
	assert.NotContains(t, decoded.Pos, domain.At("C1", "SFO"), "delete effect")
	assert.Contains(t, decoded.Neg, domain.At("C1", "SFO"), "deleted fluent becomes negative")
}

func TestResultFrameCorrectness(t *testing.T) {
	e, start, order := newMiniEngine(t)

	load := findAction(t, e, domain.ActionLoad, "C1", "P1", "SFO")
	next, err := e.Result(start, load)
	require.NoError(t, err)

	touched := map[domain.Fluent]struct{}{}
	for _, f := range load.AddEffects {
		touched[f] = struct{}{}
	}
	for _, f := range load.DelEffects {
		touched[f] = struct{}{}
	}

	// Every untouched fluent keeps its slot value.
	for i, f := range order {
		if _, ok := touched[f]; ok {
			continue
		}
		assert.Equal(t, start[i], next[i], "fluent %s changed without an effect mentioning it", f)
	}
}

func TestResultTotality(t *testing.T) {
	e, start, order := newMiniEngine(t)

	state := start
	for _, name := range []string{"Load(C1, P1, SFO)", "Fly(P1, SFO, JFK)", "Unload(C1, P1, JFK)"} {
		var action domain.GroundAction
		for _, a := range e.actions {
			if a.String() == name {
				action = a
			}
		}
		next, err := e.Result(state, action)
		require.NoError(t, err)

		decoded, err := codec.Decode(next, order)
		require.NoError(t, err)
		assert.Equal(t, len(order), len(decoded.Pos)+len(decoded.Neg),
			"every fluent lands in exactly one side after %s", name)
		state = next
	}
}

func TestResultInapplicableFailsLoudly(t *testing.T) {
	e, start, _ := newMiniEngine(t)

	unload := findAction(t, e, domain.ActionUnload, "C1", "P1", "SFO")
	_, err := e.Result(start, unload)
	assert.ErrorIs(t, err, domain.ErrNotApplicable)
}

func TestIsGoal(t *testing.T) {
	e, start, _ := newMiniEngine(t)

	ok, err := e.IsGoal(start)
	require.NoError(t, err)
	assert.False(t, ok)

	state := start
	for _, name := range []string{"Load(C1, P1, SFO)", "Fly(P1, SFO, JFK)", "Unload(C1, P1, JFK)"} {
		var action domain.GroundAction
		for _, a := range e.actions {
			if a.String() == name {
				action = a
			}
		}
		var err error
		state, err = e.Result(state, action)
		require.NoError(t, err)
	}

	ok, err = e.IsGoal(state)
	require.NoError(t, err)
	assert.True(t, ok, "cargo delivered to JFK")
}

func TestEmptyGoalTriviallySatisfied(t *testing.T) {
	cargos, planes, airports, initial, _ := testutils.MiniProblem()
	order := initial.FluentOrder()
	e := New(order, grounder.Ground(cargos, planes, airports), nil)

	ok, err := e.IsGoal(codec.Encode(initial, order))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBadEncodingSurfaces(t *testing.T) {
	e, _, _ := newMiniEngine(t)

	_, err := e.Applicable("TT")
	assert.ErrorIs(t, err, domain.ErrBadEncoding)

	_, err = e.IsGoal("TT")
	assert.ErrorIs(t, err, domain.ErrBadEncoding)
}
