package app

import (
	"github.com/pkg/errors"

	"tokamakauth/internal/config"
	"tokamakauth/internal/field"
	"tokamakauth/internal/poseidon"
)

// GenerateParams derives a parameter set from the design values in pc,
// ignoring ParamsFile.
func GenerateParams(pc config.PermutationConfig) (*poseidon.Params, error) {
	f, err := field.ByName(pc.Field)
	if err != nil {
		return nil, errors.Wrap(poseidon.ErrConfiguration, err.Error())
	}
	return poseidon.Generate(f, pc.Width, pc.FullRounds, pc.PartialRounds, pc.SboxPower)
}

// LoadParams reads pc.ParamsFile when it is set and generates the
// parameters otherwise. A file whose design differs from pc is still used;
// the difference is logged.
func LoadParams(pc config.PermutationConfig) (*poseidon.Params, error) {
	if pc.ParamsFile == "" {
		return GenerateParams(pc)
	}
	p, err := poseidon.LoadFile(pc.ParamsFile)
	if err != nil {
		return nil, err
	}
	if diff := designDiff(pc, p); len(diff) > 0 {
		log.Warn("parameter file overrides configured design", append([]interface{}{"file", pc.ParamsFile}, diff...)...)
	}
	return p, nil
}

// designDiff lists the design values where p departs from pc as key/value
// pairs for logging.
func designDiff(pc config.PermutationConfig, p *poseidon.Params) []interface{} {
	var diff []interface{}
	if p.Field.Name() != pc.Field {
		diff = append(diff, "field", p.Field.Name())
	}
	if p.Width != pc.Width {
		diff = append(diff, "t", p.Width)
	}
	if p.FullRounds != pc.FullRounds {
		diff = append(diff, "roundsFull", p.FullRounds)
	}
	if p.PartialRounds != pc.PartialRounds {
		diff = append(diff, "roundsPartial", p.PartialRounds)
	}
	if p.SboxPower != pc.SboxPower {
		diff = append(diff, "sboxPower", p.SboxPower)
	}
	return diff
}
