/*
Package skyplan models the classical air-cargo logistics domain as a
finite-state transition system consumable by generic graph-search drivers.

A Problem is built once from the domain's cargo/plane/airport sets, an
initial state specification and a goal. Construction grounds the Load,
Unload and Fly schemas into concrete actions, fixes the fluent order that
defines the positional state encoding, and validates the description.
Search drivers then call Actions, Result and IsGoal against the immutable
instance while exploring the state graph, and consult one of three
heuristics (constant, goal count, planning-graph level sum) for informed
search.

	problem, err := skyplan.New(
		[]string{"C1"}, []string{"P1"}, []string{"SFO", "JFK"},
		initial, goal,
	)
	if err != nil {
		log.Fatal(err)
	}
	actions, _ := problem.Actions(problem.InitialState())

The transition semantics follow STRIPS add/delete lists: a successor keeps
every fluent the action's effects do not mention, delete effects dominate
stale positives and add effects dominate stale negatives.
*/
package skyplan
