package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/skyplan/pkg/domain"
	"github.com/aretw0/skyplan/pkg/scenario"
)

func writeProblemFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadClosedWorldDefault(t *testing.T) {
	path := writeProblemFile(t, `
cargos: [C1]
planes: [P1]
airports: [SFO, JFK]
init:
  positive: ["At(C1, SFO)", "At(P1, SFO)"]
goal: ["At(C1, JFK)"]
`)

	p, err := scenario.Load(path)
	require.NoError(t, err)

	// 2 positives plus the derived complement of the 5-fluent space.
	assert.Len(t, p.FluentOrder(), 5)
	assert.Equal(t, domain.EncodedState("TTFFF"), p.InitialState())
	assert.Equal(t, []domain.Fluent{domain.At("C1", "JFK")}, p.Goal())
}

func TestLoadExplicitNegatives(t *testing.T) {
	path := writeProblemFile(t, `
cargos: [C1]
planes: [P1]
airports: [SFO, JFK]
init:
  positive: ["At(C1, SFO)", "At(P1, SFO)"]
  negative: ["At(C1, JFK)", "At(P1, JFK)", "In(C1, P1)"]
goal: ["At(C1, JFK)"]
`)

	p, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Len(t, p.FluentOrder(), 5)
}

func TestLoadBadFluent(t *testing.T) {
	path := writeProblemFile(t, `
cargos: [C1]
planes: [P1]
airports: [SFO]
init:
  positive: ["At C1 SFO"]
goal: []
`)

	_, err := scenario.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init.positive")
}

func TestLoadBadYAML(t *testing.T) {
	path := writeProblemFile(t, "cargos: [C1\n")

	_, err := scenario.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse problem file")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := scenario.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read problem file")
}

func TestLoadValidationApplies(t *testing.T) {
	path := writeProblemFile(t, `
cargos: [C1]
planes: [P1]
airports: [SFO, JFK]
init:
  positive: ["At(C1, SFO)", "At(P1, SFO)"]
goal: ["At(C9, JFK)"]
`)

	_, err := scenario.Load(path)
	assert.ErrorIs(t, err, domain.ErrUnknownObject)
}
