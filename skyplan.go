package skyplan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aretw0/skyplan/internal/codec"
	"github.com/aretw0/skyplan/internal/engine"
	"github.com/aretw0/skyplan/internal/grounder"
	"github.com/aretw0/skyplan/internal/logging"
	"github.com/aretw0/skyplan/internal/validator"
	"github.com/aretw0/skyplan/pkg/domain"
	"github.com/aretw0/skyplan/pkg/heuristic"
	"github.com/aretw0/skyplan/pkg/planninggraph"
	"github.com/aretw0/skyplan/pkg/ports"
)

// Problem is a fully grounded air-cargo planning problem: the fluent
// order, the grounded action list, the encoded initial state and the goal.
// Everything is computed eagerly at construction and immutable afterwards,
// so one Problem may serve any number of concurrent search frontiers.
type Problem struct {
	id string

	cargos   []string
	planes   []string
	airports []string

	order   domain.FluentOrder
	actions []domain.GroundAction
	initial domain.EncodedState
	goal    []domain.Fluent

	engine *engine.Engine
	logger *slog.Logger

	hConstant  heuristic.Func
	hGoalCount heuristic.Func
	hLevelSum  heuristic.Func
}

// Option defines a functional option for configuring a Problem.
type Option func(*config)

type config struct {
	logger *slog.Logger
	kb     ports.KnowledgeBaseFactory
	oracle ports.CostOracle
	cache  ports.HeuristicCache
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithKnowledgeBase injects a custom entailment backend factory, bypassing
// the default set-backed knowledge base.
func WithKnowledgeBase(factory ports.KnowledgeBaseFactory) Option {
	return func(c *config) {
		c.kb = factory
	}
}

// WithCostOracle replaces the default relaxed-planning-graph oracle used
// by the level-sum heuristic.
func WithCostOracle(oracle ports.CostOracle) Option {
	return func(c *config) {
		c.oracle = oracle
	}
}

// WithHeuristicCache replaces the default in-memory memo cache of the
// level-sum heuristic (e.g. with the Redis adapter).
func WithHeuristicCache(cache ports.HeuristicCache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// New constructs a Problem from the domain's object sets, the initial
// state specification and the goal fluents. The fluent order is fixed here
// (initial positives first, then negatives) and never changes; grounding
// happens once and the result is shared read-only.
//
// Construction fails fast on malformed input: fluents referencing
// undeclared objects, a fluent asserted on both sides of the initial
// state, or goal fluents absent from the initial specification.
func New(cargos, planes, airports []string, initial domain.WorldState, goal []domain.Fluent, opts ...Option) (*Problem, error) {
	if err := validator.ValidateProblem(cargos, planes, airports, initial, goal); err != nil {
		return nil, fmt.Errorf("invalid problem description: %w", err)
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.NewNop()
	}

	order := initial.FluentOrder()
	actions := grounder.Ground(cargos, planes, airports)

	engineOpts := []engine.Option{engine.WithLogger(cfg.logger)}
	if cfg.kb != nil {
		engineOpts = append(engineOpts, engine.WithKnowledgeBase(cfg.kb))
	}

	p := &Problem{
		id:       uuid.NewString(),
		cargos:   cargos,
		planes:   planes,
		airports: airports,
		order:    order,
		actions:  actions,
		initial:  codec.Encode(initial, order),
		goal:     goal,
		engine:   engine.New(order, actions, goal, engineOpts...),
		logger:   cfg.logger,
	}

	oracle := cfg.oracle
	if oracle == nil {
		oracle = planninggraph.New(actions, goal)
	}
	var levelSumOpts []heuristic.LevelSumOption
	if cfg.cache != nil {
		levelSumOpts = append(levelSumOpts, heuristic.WithCache(cfg.cache))
	}

	p.hConstant = heuristic.Constant()
	p.hGoalCount = heuristic.GoalCount(order, goal)
	p.hLevelSum = heuristic.LevelSum(p.id, order, oracle, levelSumOpts...)

	p.logger.Debug("problem constructed",
		"id", p.id,
		"fluents", len(order),
		"actions", len(actions),
		"goal", len(goal))
	return p, nil
}

// ID is the problem's unique identity, used to key heuristic memoization
// so that evaluations under different problems never collide.
func (p *Problem) ID() string { return p.id }

// InitialState returns the encoded initial state.
func (p *Problem) InitialState() domain.EncodedState { return p.initial }

// FluentOrder returns the problem's fluent order. Callers must treat it as
// read-only.
func (p *Problem) FluentOrder() domain.FluentOrder { return p.order }

// GroundActions returns the full grounded action list in generation order
// (Loads, then Unloads, then Flys). Callers must treat it as read-only.
func (p *Problem) GroundActions() []domain.GroundAction { return p.actions }

// Goal returns the goal fluents. Callers must treat it as read-only.
func (p *Problem) Goal() []domain.Fluent { return p.goal }

// Actions returns every action applicable in state, in generation order.
func (p *Problem) Actions(state domain.EncodedState) ([]domain.GroundAction, error) {
	return p.engine.Applicable(state)
}

// Result returns the successor of state under action. It returns
// domain.ErrNotApplicable if the action's preconditions do not hold.
func (p *Problem) Result(state domain.EncodedState, action domain.GroundAction) (domain.EncodedState, error) {
	return p.engine.Result(state, action)
}

// IsGoal reports whether every goal fluent holds in state.
func (p *Problem) IsGoal(state domain.EncodedState) (bool, error) {
	return p.engine.IsGoal(state)
}

// Decode reconstructs the world state behind an encoded state.
func (p *Problem) Decode(state domain.EncodedState) (domain.WorldState, error) {
	return codec.Decode(state, p.order)
}

// HConstant returns the constant-1 heuristic.
func (p *Problem) HConstant() heuristic.Func { return p.hConstant }

// HGoalCount returns the ignore-preconditions goal-count heuristic.
func (p *Problem) HGoalCount() heuristic.Func { return p.hGoalCount }

// HLevelSum returns the memoized planning-graph level-sum heuristic.
func (p *Problem) HLevelSum() heuristic.Func { return p.hLevelSum }

// Heuristic returns the named evaluator ("constant", "goalcount",
// "levelsum"). It is a convenience for CLI and HTTP surfaces that select
// heuristics by name.
func (p *Problem) Heuristic(name string) (heuristic.Func, error) {
	switch name {
	case "constant":
		return p.hConstant, nil
	case "goalcount":
		return p.hGoalCount, nil
	case "levelsum":
		return p.hLevelSum, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want constant, goalcount or levelsum)", name)
	}
}

// Replay applies a sequence of actions from the initial state and returns
// the resulting state. It fails on the first inapplicable action. Useful
// for validating plans produced by an external search driver.
func (p *Problem) Replay(ctx context.Context, plan []domain.GroundAction) (domain.EncodedState, error) {
	state := p.initial
	for i, action := range plan {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		next, err := p.engine.Result(state, action)
		if err != nil {
			return "", fmt.Errorf("step %d (%s): %w", i, action, err)
		}
		state = next
	}
	return state, nil
}
