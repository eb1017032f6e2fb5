package heuristic

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/config"
)

// ErrUnknownHeuristic is returned by New for names that are not registered
var ErrUnknownHeuristic = errors.New("unknown heuristic")

// Constructor builds a heuristic variant from options
type Constructor func(Options) Heuristic

// constructors is fixed at init and only read afterwards
var constructors = map[string]Constructor{
	AimToKingName:  func(o Options) Heuristic { return NewAimToKing(o) },
	MaterialName:   func(o Options) Heuristic { return NewMaterial(o) },
	PositionalName: func(o Options) Heuristic { return NewPositional(o) },
}

// Names lists the registered variants in sorted order
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named variant
func New(name string, opts Options) (Heuristic, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownHeuristic, name, Names())
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("heuristic %s: %w", name, err)
	}
	return ctor(opts), nil
}

// OptionsFromConfig converts the heuristic config section to Options
func OptionsFromConfig(c config.HeuristicConfig) (Options, error) {
	perspective, err := ParsePerspective(c.Perspective)
	if err != nil {
		return Options{}, err
	}
	threat, err := ParseThreatReference(c.ThreatReference)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Perspective:       perspective,
		ThreatReference:   threat,
		DefaultKingHealth: c.DefaultKingHealth,
		HealthScale:       c.HealthScale,
		ReachReward:       c.ReachReward,
		MaterialScale:     c.MaterialScale,
	}, nil
}

// FromConfig builds the variant selected by the heuristic config section
func FromConfig(c config.HeuristicConfig) (Heuristic, error) {
	opts, err := OptionsFromConfig(c)
	if err != nil {
		return nil, fmt.Errorf("heuristic %s: %w", c.Name, err)
	}
	return New(c.Name, opts)
}
