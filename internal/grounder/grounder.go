// Package grounder expands the parametric air-cargo action schemas into the
// flat list of concrete actions a problem instance carries for its lifetime.
//
// No validity filtering happens here: a Load is generated even for
// combinations that can never occur in the scenario. Infeasible actions are
// rejected later by the applicability test, keeping grounding a cheap
// O(|C|*|P|*|A|) pass.
package grounder

import "github.com/aretw0/skyplan/pkg/domain"

// Ground instantiates the Load, Unload and Fly schemas over the domain's
// object sets, in that schema order. Within each schema the nested
// iteration order is cargo/plane/airport (Load, Unload) and from/to/plane
// (Fly), matching the generation order the search contract promises.
func Ground(cargos, planes, airports []string) []domain.GroundAction {
	actions := loadActions(cargos, planes, airports)
	actions = append(actions, unloadActions(cargos, planes, airports)...)
	actions = append(actions, flyActions(planes, airports)...)
	return actions
}

// loadActions grounds Load(c, p, a): cargo and plane must both be at the
// airport; the cargo moves from the airport into the plane.
func loadActions(cargos, planes, airports []string) []domain.GroundAction {
	loads := make([]domain.GroundAction, 0, len(cargos)*len(planes)*len(airports))
	for _, cargo := range cargos {
		for _, plane := range planes {
			for _, airport := range airports {
				loads = append(loads, domain.GroundAction{
					Name: domain.ActionLoad,
					Args: []string{cargo, plane, airport},
					PrecondPos: []domain.Fluent{
						domain.At(cargo, airport),
						domain.At(plane, airport),
					},
					AddEffects: []domain.Fluent{domain.In(cargo, plane)},
					DelEffects: []domain.Fluent{domain.At(cargo, airport)},
				})
			}
		}
	}
	return loads
}

// unloadActions grounds Unload(c, p, a): the inverse of Load.
func unloadActions(cargos, planes, airports []string) []domain.GroundAction {
	unloads := make([]domain.GroundAction, 0, len(cargos)*len(planes)*len(airports))
	for _, cargo := range cargos {
		for _, plane := range planes {
			for _, airport := range airports {
				unloads = append(unloads, domain.GroundAction{
					Name: domain.ActionUnload,
					Args: []string{cargo, plane, airport},
					PrecondPos: []domain.Fluent{
						domain.In(cargo, plane),
						domain.At(plane, airport),
					},
					AddEffects: []domain.Fluent{domain.At(cargo, airport)},
					DelEffects: []domain.Fluent{domain.In(cargo, plane)},
				})
			}
		}
	}
	return unloads
}

// flyActions grounds Fly(p, from, to) for every ordered airport pair with
// from != to.
func flyActions(planes, airports []string) []domain.GroundAction {
	flys := make([]domain.GroundAction, 0, len(planes)*len(airports)*(len(airports)-1))
	for _, from := range airports {
		for _, to := range airports {
			if from == to {
				continue
			}
			for _, plane := range planes {
				flys = append(flys, domain.GroundAction{
					Name:       domain.ActionFly,
					Args:       []string{plane, from, to},
					PrecondPos: []domain.Fluent{domain.At(plane, from)},
					AddEffects: []domain.Fluent{domain.At(plane, to)},
					DelEffects: []domain.Fluent{domain.At(plane, from)},
				})
			}
		}
	}
	return flys
}
