package app

import (
	logger "github.com/multiversx/mx-chain-logger-go"

	"tokamakauth/internal/config"
	"tokamakauth/internal/group"
	"tokamakauth/internal/poseidon"
	"tokamakauth/internal/reddsa"
)

var log = logger.GetOrCreate("tokamakauth/app")

// Wire bundles the components built from one configuration.
type Wire struct {
	Config      config.Config
	Params      *poseidon.Params
	Permutation *poseidon.Permutation
	Group       group.Group
	Scheme      *reddsa.Scheme
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg config.Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Permutation
	params, err := LoadParams(cfg.Permutation)
	if err != nil {
		return nil, err
	}
	perm, err := poseidon.NewPermutation(params)
	if err != nil {
		return nil, err
	}

	// Group and seed expander
	g, err := group.ByName(cfg.Scheme.Group)
	if err != nil {
		return nil, err
	}
	expand, err := reddsa.ExpanderByName(cfg.Scheme.SeedExpander)
	if err != nil {
		return nil, err
	}

	scheme, err := reddsa.New(g, perm,
		reddsa.WithSeedExpander(expand),
		reddsa.WithTags([]byte(cfg.Scheme.NonceTag), []byte(cfg.Scheme.ChallengeTag)),
	)
	if err != nil {
		return nil, err
	}

	log.Debug("wired", "group", g.Name(), "field", params.Field.Name(), "expander", cfg.Scheme.SeedExpander)
	return &Wire{
		Config:      cfg,
		Params:      params,
		Permutation: perm,
		Group:       g,
		Scheme:      scheme,
	}, nil
}
