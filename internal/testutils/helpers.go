package testutils

import (
	"github.com/aretw0/skyplan/pkg/domain"
)

// MiniProblem returns the pieces of the smallest interesting delivery
// problem: one cargo and one plane at SFO, the cargo due at JFK. Tests
// assemble these into whatever layer they exercise.
func MiniProblem() (cargos, planes, airports []string, initial domain.WorldState, goal []domain.Fluent) {
	cargos = []string{"C1"}
	planes = []string{"P1"}
	airports = []string{"SFO", "JFK"}

	initial = domain.NewWorldState(
		[]domain.Fluent{
			domain.At("C1", "SFO"),
			domain.At("P1", "SFO"),
		},
		[]domain.Fluent{
			domain.At("C1", "JFK"),
			domain.At("P1", "JFK"),
			domain.In("C1", "P1"),
		},
	)
	goal = []domain.Fluent{domain.At("C1", "JFK")}
	return cargos, planes, airports, initial, goal
}
