package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/skyplan"
	"github.com/aretw0/skyplan/pkg/domain"
)

// File is the YAML schema of a problem file:
//
//	cargos: [C1]
//	planes: [P1]
//	airports: [SFO, JFK]
//	init:
//	  positive: ["At(C1, SFO)", "At(P1, SFO)"]
//	  negative: []          # optional; omitted means closed-world complement
//	goal: ["At(C1, JFK)"]
type File struct {
	Cargos   []string `yaml:"cargos"`
	Planes   []string `yaml:"planes"`
	Airports []string `yaml:"airports"`
	Init     struct {
		Positive []string `yaml:"positive"`
		Negative []string `yaml:"negative"`
	} `yaml:"init"`
	Goal []string `yaml:"goal"`
}

// Load reads a YAML problem file and constructs the Problem. When the
// negative initial list is omitted, it is derived as the closed-world
// complement of the positive list.
func Load(path string, opts ...skyplan.Option) (*skyplan.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse problem file: %w", err)
	}

	pos, err := parseFluents(file.Init.Positive)
	if err != nil {
		return nil, fmt.Errorf("init.positive: %w", err)
	}
	goal, err := parseFluents(file.Goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}

	var neg []domain.Fluent
	if len(file.Init.Negative) > 0 {
		neg, err = parseFluents(file.Init.Negative)
		if err != nil {
			return nil, fmt.Errorf("init.negative: %w", err)
		}
	} else {
		neg = CloseWorld(file.Cargos, file.Planes, file.Airports, pos)
	}

	initial := domain.NewWorldState(pos, neg)
	return skyplan.New(file.Cargos, file.Planes, file.Airports, initial, goal, opts...)
}

func parseFluents(raw []string) ([]domain.Fluent, error) {
	fluents := make([]domain.Fluent, 0, len(raw))
	for _, s := range raw {
		f, err := domain.ParseFluent(s)
		if err != nil {
			return nil, err
		}
		fluents = append(fluents, f)
	}
	return fluents, nil
}
