/*
Package domain contains the core value types of the skyplan planning core.

It defines the fundamental entities of the STRIPS formulation: Fluents
(ground atomic propositions), WorldStates (positive/negative fluent sets),
the FluentOrder that fixes the positional encoding, EncodedStates (the
comparable state keys handed to search drivers) and GroundActions. This
package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Fluent: a ground proposition such as At(C1, SFO) or In(C1, P1).
  - WorldState: the two-sided truth assignment over fluents.
  - FluentOrder: the immutable bit ordering owned by a Problem.
  - EncodedState: the dense, hashable positional encoding of a state.
  - GroundAction: an instantiated schema with preconditions and effects.
*/
package domain
