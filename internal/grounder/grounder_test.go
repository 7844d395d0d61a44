package grounder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/skyplan/pkg/domain"
)

func TestGroundingCardinality(t *testing.T) {
	cases := []struct {
		cargos, planes, airports int
	}{
		{1, 1, 2},
		{2, 2, 2},
		{3, 3, 3},
		{4, 2, 4},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%dx%d", tc.cargos, tc.planes, tc.airports), func(t *testing.T) {
			actions := Ground(ids("C", tc.cargos), ids("P", tc.planes), ids("A", tc.airports))

			counts := map[string]int{}
			for _, a := range actions {
				counts[a.Name]++
			}

			want := tc.cargos * tc.planes * tc.airports
			assert.Equal(t, want, counts[domain.ActionLoad])
			assert.Equal(t, want, counts[domain.ActionUnload])
			assert.Equal(t, tc.planes*tc.airports*(tc.airports-1), counts[domain.ActionFly])
		})
	}
}

func TestGenerationOrder(t *testing.T) {
	actions := Ground([]string{"C1", "C2"}, []string{"P1"}, []string{"SFO", "JFK"})

	// Loads first, then Unloads, then Flys; cargo-major within the first
	// two schemas, from-major within Fly.
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	assert.Equal(t, []string{
		"Load(C1, P1, SFO)",
		"Load(C1, P1, JFK)",
		"Load(C2, P1, SFO)",
		"Load(C2, P1, JFK)",
		"Unload(C1, P1, SFO)",
		"Unload(C1, P1, JFK)",
		"Unload(C2, P1, SFO)",
		"Unload(C2, P1, JFK)",
		"Fly(P1, SFO, JFK)",
		"Fly(P1, JFK, SFO)",
	}, names)
}

func TestLoadActionShape(t *testing.T) {
	actions := Ground([]string{"C1"}, []string{"P1"}, []string{"SFO", "JFK"})

	load := actions[0]
	require.Equal(t, "Load(C1, P1, SFO)", load.String())
	assert.ElementsMatch(t, []domain.Fluent{
		domain.At("C1", "SFO"),
		domain.At("P1", "SFO"),
	}, load.PrecondPos)
	assert.Empty(t, load.PrecondNeg)
	assert.Equal(t, []domain.Fluent{domain.In("C1", "P1")}, load.AddEffects)
	assert.Equal(t, []domain.Fluent{domain.At("C1", "SFO")}, load.DelEffects)
}

func TestUnloadActionShape(t *testing.T) {
	actions := Ground([]string{"C1"}, []string{"P1"}, []string{"SFO"})

	var unload domain.GroundAction
	for _, a := range actions {
		if a.Name == domain.ActionUnload {
			unload = a
			break
		}
	}
	require.Equal(t, "Unload(C1, P1, SFO)", unload.String())
	assert.ElementsMatch(t, []domain.Fluent{
		domain.In("C1", "P1"),
		domain.At("P1", "SFO"),
	}, unload.PrecondPos)
	assert.Equal(t, []domain.Fluent{domain.At("C1", "SFO")}, unload.AddEffects)
	assert.Equal(t, []domain.Fluent{domain.In("C1", "P1")}, unload.DelEffects)
}

func TestFlySkipsSelfLoops(t *testing.T) {
	actions := Ground(nil, []string{"P1"}, []string{"SFO", "JFK", "ATL"})
	for _, a := range actions {
		if a.Name != domain.ActionFly {
			continue
		}
		assert.NotEqual(t, a.Args[1], a.Args[2], "Fly must never keep a plane in place: %s", a)
	}
}

// TestNoValidityFiltering checks the deliberate trade-off: grounding emits
// physically impossible combinations too, leaving rejection to the
// applicability test.
func TestNoValidityFiltering(t *testing.T) {
	actions := Ground([]string{"C1"}, []string{"P1"}, []string{"SFO", "JFK"})
	assert.Len(t, actions, 2+2+2, "1*1*2 Loads + 1*1*2 Unloads + 1*2*1 Flys")
}

func ids(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return out
}
