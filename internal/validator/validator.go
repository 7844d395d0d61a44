// Package validator checks a problem description before any grounding or
// search happens. A goal that references an object the domain never
// declared would otherwise silently produce an always-false goal test;
// validation turns that into a loud construction error.
package validator

import (
	"errors"
	"fmt"

	"github.com/aretw0/skyplan/pkg/domain"
)

// ValidateProblem checks the initial state and goal against the declared
// object sets. It reports every problem found, not just the first.
func ValidateProblem(cargos, planes, airports []string, initial domain.WorldState, goal []domain.Fluent) error {
	known := objectSets{
		cargos:   stringSet(cargos),
		planes:   stringSet(planes),
		airports: stringSet(airports),
	}

	var errs []error

	for _, f := range initial.Pos {
		if err := known.checkFluent(f); err != nil {
			errs = append(errs, fmt.Errorf("initial positive %s: %w", f, err))
		}
	}
	for _, f := range initial.Neg {
		if err := known.checkFluent(f); err != nil {
			errs = append(errs, fmt.Errorf("initial negative %s: %w", f, err))
		}
	}

	// A fluent asserted on both sides makes the encoding ambiguous.
	pos := make(map[domain.Fluent]struct{}, len(initial.Pos))
	for _, f := range initial.Pos {
		pos[f] = struct{}{}
	}
	for _, f := range initial.Neg {
		if _, dup := pos[f]; dup {
			errs = append(errs, fmt.Errorf("fluent %s asserted both positive and negative", f))
		}
	}

	order := initial.FluentOrder()
	for _, f := range goal {
		if err := known.checkFluent(f); err != nil {
			errs = append(errs, fmt.Errorf("goal %s: %w", f, err))
			continue
		}
		if !order.Contains(f) {
			errs = append(errs, fmt.Errorf("goal %s is absent from the initial specification; the goal test could never succeed", f))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("found %d problem description errors:\n%w", len(errs), errors.Join(errs...))
	}
	return nil
}

type objectSets struct {
	cargos   map[string]struct{}
	planes   map[string]struct{}
	airports map[string]struct{}
}

// checkFluent verifies that the fluent's arguments name declared objects of
// the right kind for its predicate.
func (o objectSets) checkFluent(f domain.Fluent) error {
	switch f.Predicate {
	case domain.PredicateAt:
		_, isCargo := o.cargos[f.Subject]
		_, isPlane := o.planes[f.Subject]
		if !isCargo && !isPlane {
			return fmt.Errorf("%w: %q is neither a cargo nor a plane", domain.ErrUnknownObject, f.Subject)
		}
		if _, ok := o.airports[f.Object]; !ok {
			return fmt.Errorf("%w: %q is not an airport", domain.ErrUnknownObject, f.Object)
		}
	case domain.PredicateIn:
		if _, ok := o.cargos[f.Subject]; !ok {
			return fmt.Errorf("%w: %q is not a cargo", domain.ErrUnknownObject, f.Subject)
		}
		if _, ok := o.planes[f.Object]; !ok {
			return fmt.Errorf("%w: %q is not a plane", domain.ErrUnknownObject, f.Object)
		}
	default:
		return fmt.Errorf("unknown predicate %q", f.Predicate)
	}
	return nil
}

func stringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}
