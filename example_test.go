package skyplan_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/skyplan"
	"github.com/aretw0/skyplan/pkg/domain"
	"github.com/aretw0/skyplan/pkg/scenario"
	"github.com/aretw0/skyplan/pkg/search"
)

// ExampleNew demonstrates constructing a problem directly from object sets
// and an initial state specification.
func ExampleNew() {
	cargos := []string{"C1"}
	planes := []string{"P1"}
	airports := []string{"SFO", "JFK"}

	pos := []domain.Fluent{
		domain.At("C1", "SFO"),
		domain.At("P1", "SFO"),
	}
	initial := domain.NewWorldState(pos, scenario.CloseWorld(cargos, planes, airports, pos))
	goal := []domain.Fluent{domain.At("C1", "JFK")}

	problem, err := skyplan.New(cargos, planes, airports, initial, goal)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("state:", problem.InitialState())
	fmt.Println("actions:", len(problem.GroundActions()))
	// Output:
	// state: TTFFF
	// actions: 6
}

// Example_solve runs A* with the level-sum heuristic on the first canonical
// scenario and prints the optimal plan.
func Example_solve() {
	problem, err := scenario.P1()
	if err != nil {
		log.Fatal(err)
	}

	plan, err := search.AStar(context.Background(), problem, problem.HLevelSum())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("plan length:", len(plan))
	// Output:
	// plan length: 6
}

// Example_transitions walks the transition engine by hand: list what is
// applicable, apply an action, test the goal.
func Example_transitions() {
	cargos := []string{"C1"}
	planes := []string{"P1"}
	airports := []string{"SFO", "JFK"}

	pos := []domain.Fluent{
		domain.At("C1", "SFO"),
		domain.At("P1", "SFO"),
	}
	initial := domain.NewWorldState(pos, scenario.CloseWorld(cargos, planes, airports, pos))

	problem, err := skyplan.New(cargos, planes, airports, initial,
		[]domain.Fluent{domain.At("C1", "JFK")})
	if err != nil {
		log.Fatal(err)
	}

	state := problem.InitialState()
	applicable, err := problem.Actions(state)
	if err != nil {
		log.Fatal(err)
	}
	for _, action := range applicable {
		fmt.Println(action)
	}

	state, err = problem.Result(state, applicable[0])
	if err != nil {
		log.Fatal(err)
	}
	ok, err := problem.IsGoal(state)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("goal after one step:", ok)
	// Output:
	// Load(C1, P1, SFO)
	// Fly(P1, SFO, JFK)
	// goal after one step: false
}
