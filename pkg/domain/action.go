package domain

import (
	"fmt"
	"strings"
)

// GroundAction is a fully instantiated action schema: a name, an ordered
// argument tuple, precondition lists and add/delete effect lists. Actions
// are grounded once per problem and shared read-only across all search
// states; none of the slices may be mutated after grounding.
type GroundAction struct {
	Name string
	Args []string

	PrecondPos []Fluent
	PrecondNeg []Fluent

	AddEffects []Fluent
	DelEffects []Fluent
}

// Action schema names produced by the grounder.
const (
	ActionLoad   = "Load"
	ActionUnload = "Unload"
	ActionFly    = "Fly"
)

// String renders the action in the conventional "Name(A, B, C)" form.
func (a GroundAction) String() string {
	return fmt.Sprintf("%s(%s)", a.Name, strings.Join(a.Args, ", "))
}
