/*
Package ports defines the driven ports (interfaces) for the skyplan core.

These interfaces decouple the planning core from external collaborators,
allowing the engine to work with various entailment backends and heuristic
cache implementations.

# Key Interfaces

  - KnowledgeBase: literal entailment (assert positives, test membership).
  - CostOracle: the planning-graph level-sum estimator.
  - HeuristicCache: bounded storage for memoized heuristic values.
*/
package ports
