// Package scenario builds concrete air-cargo problem instances: the three
// canonical scenarios plus a YAML problem-file loader.
package scenario

import (
	"fmt"

	"github.com/aretw0/skyplan"
	"github.com/aretw0/skyplan/pkg/domain"
)

// ErrUnknownScenario is returned by ByName for names other than p1/p2/p3.
var ErrUnknownScenario = fmt.Errorf("unknown scenario")

// P1 is the 2-cargo, 2-plane, 2-airport scenario: C1/P1 start at SFO,
// C2/P2 at JFK; the cargos must swap coasts. Optimal plan length: 6.
func P1(opts ...skyplan.Option) (*skyplan.Problem, error) {
	cargos := []string{"C1", "C2"}
	planes := []string{"P1", "P2"}
	airports := []string{"JFK", "SFO"}
	pos := []domain.Fluent{
		domain.At("C1", "SFO"),
		domain.At("C2", "JFK"),
		domain.At("P1", "SFO"),
		domain.At("P2", "JFK"),
	}
	goal := []domain.Fluent{
		domain.At("C1", "JFK"),
		domain.At("C2", "SFO"),
	}
	initial := domain.NewWorldState(pos, CloseWorld(cargos, planes, airports, pos))
	return skyplan.New(cargos, planes, airports, initial, goal, opts...)
}

// P2 is the 3-cargo, 3-plane, 3-airport scenario.
func P2(opts ...skyplan.Option) (*skyplan.Problem, error) {
	cargos := []string{"C1", "C2", "C3"}
	planes := []string{"P1", "P2", "P3"}
	airports := []string{"JFK", "SFO", "ATL"}
	pos := []domain.Fluent{
		domain.At("C1", "SFO"),
		domain.At("C2", "JFK"),
		domain.At("C3", "ATL"),
		domain.At("P1", "SFO"),
		domain.At("P2", "JFK"),
		domain.At("P3", "ATL"),
	}
	goal := []domain.Fluent{
		domain.At("C1", "JFK"),
		domain.At("C2", "SFO"),
		domain.At("C3", "SFO"),
	}
	initial := domain.NewWorldState(pos, CloseWorld(cargos, planes, airports, pos))
	return skyplan.New(cargos, planes, airports, initial, goal, opts...)
}

// P3 is the 4-cargo, 2-plane, 4-airport scenario.
func P3(opts ...skyplan.Option) (*skyplan.Problem, error) {
	cargos := []string{"C1", "C2", "C3", "C4"}
	planes := []string{"P1", "P2"}
	airports := []string{"JFK", "SFO", "ATL", "ORD"}
	pos := []domain.Fluent{
		domain.At("C1", "SFO"),
		domain.At("C2", "JFK"),
		domain.At("C3", "ATL"),
		domain.At("C4", "ORD"),
		domain.At("P1", "SFO"),
		domain.At("P2", "JFK"),
	}
	goal := []domain.Fluent{
		domain.At("C1", "JFK"),
		domain.At("C3", "JFK"),
		domain.At("C2", "SFO"),
		domain.At("C4", "SFO"),
	}
	initial := domain.NewWorldState(pos, CloseWorld(cargos, planes, airports, pos))
	return skyplan.New(cargos, planes, airports, initial, goal, opts...)
}

// Names lists the built-in scenario names accepted by ByName.
func Names() []string {
	return []string{"p1", "p2", "p3"}
}

// ByName builds a built-in scenario by name.
func ByName(name string, opts ...skyplan.Option) (*skyplan.Problem, error) {
	switch name {
	case "p1":
		return P1(opts...)
	case "p2":
		return P2(opts...)
	case "p3":
		return P3(opts...)
	default:
		return nil, fmt.Errorf("%w: %q (want p1, p2 or p3)", ErrUnknownScenario, name)
	}
}

// CloseWorld returns the closed-world complement of pos: every fluent of
// the domain's fluent space (cargo locations, containments, plane
// locations) that pos does not assert. Enumeration order is deterministic
// so the resulting FluentOrder is stable across runs.
func CloseWorld(cargos, planes, airports []string, pos []domain.Fluent) []domain.Fluent {
	asserted := make(map[domain.Fluent]struct{}, len(pos))
	for _, f := range pos {
		asserted[f] = struct{}{}
	}

	var neg []domain.Fluent
	add := func(f domain.Fluent) {
		if _, ok := asserted[f]; !ok {
			neg = append(neg, f)
		}
	}

	for _, cargo := range cargos {
		for _, airport := range airports {
			add(domain.At(cargo, airport))
		}
		for _, plane := range planes {
			add(domain.In(cargo, plane))
		}
	}
	for _, plane := range planes {
		for _, airport := range airports {
			add(domain.At(plane, airport))
		}
	}
	return neg
}
