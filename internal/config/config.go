package config

import (
	"os"
	"reflect"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/validator.v8"

	"tokamakauth/internal/field"
	"tokamakauth/internal/group"
	"tokamakauth/internal/reddsa"
)

// ErrInvalidConfig is returned for configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// PermutationConfig selects the permutation parameters. When ParamsFile is
// set the parameters are read from it; otherwise they are generated from the
// design values below.
type PermutationConfig struct {
	ParamsFile    string
	Field         string `validate:"required"`
	Width         int    `validate:"min=2,max=16"`
	FullRounds    int    `validate:"min=2,max=1022"`
	PartialRounds int    `validate:"min=0,max=1023"`
	SboxPower     int    `validate:"min=3,max=7"`
}

// SchemeConfig selects the group backend, the seed expander and the
// domain-separation tags.
type SchemeConfig struct {
	Group        string `validate:"required"`
	SeedExpander string `validate:"required"`
	NonceTag     string `validate:"required"`
	ChallengeTag string `validate:"required,nefield=NonceTag"`
}

// Config is the top-level configuration file.
type Config struct {
	Permutation PermutationConfig
	Scheme      SchemeConfig
}

// Default returns the protocol defaults.
func Default() Config {
	return Config{
		Permutation: PermutationConfig{
			Field:         field.Edwards25519Scalar,
			Width:         4,
			FullRounds:    8,
			PartialRounds: 60,
			SboxPower:     5,
		},
		Scheme: SchemeConfig{
			Group:        group.Edwards25519Name,
			SeedExpander: reddsa.ExpanderSHA512,
			NonceTag:     reddsa.NonceTag,
			ChallengeTag: reddsa.ChallengeTag,
		},
	}
}

// Load reads a TOML file and overlays the keys it sets on Default. Keys that
// do not name a Section.Field of Config are rejected. The result is
// validated.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read %s", path)
	}
	return Parse(b)
}

// Parse is Load for in-memory TOML.
func Parse(data []byte) (Config, error) {
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "toml: %v", err)
	}
	if err := checkKeys(tree, reflect.TypeOf(Config{})); err != nil {
		return Config{}, err
	}
	var fromFile Config
	if err := tree.Unmarshal(&fromFile); err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "toml: %v", err)
	}

	cfg := Default()
	overlay(tree, reflect.ValueOf(&cfg).Elem(), reflect.ValueOf(fromFile))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// checkKeys requires every table in the tree to be a section of typ and
// every key in it to be a field of that section. Names are case-sensitive.
func checkKeys(tree *toml.Tree, typ reflect.Type) error {
	for _, name := range tree.Keys() {
		section, ok := typ.FieldByName(name)
		sub, isTable := tree.Get(name).(*toml.Tree)
		if !ok || !isTable {
			return errors.Wrapf(ErrInvalidConfig, "unknown key %q", name)
		}
		for _, key := range sub.Keys() {
			if _, ok := section.Type.FieldByName(key); !ok {
				return errors.Wrapf(ErrInvalidConfig, "unknown key %q", name+"."+key)
			}
		}
	}
	return nil
}

// overlay copies every leaf of src whose Section.Key path is present in the
// tree into dst.
func overlay(tree *toml.Tree, dst, src reflect.Value) {
	typ := src.Type()
	for i := 0; i < typ.NumField(); i++ {
		section := typ.Field(i)
		for j := 0; j < section.Type.NumField(); j++ {
			key := section.Name + "." + section.Type.Field(j).Name
			if tree.Has(key) {
				dst.Field(i).Field(j).Set(src.Field(i).Field(j))
			}
		}
	}
}

var validate = validator.New(&validator.Config{TagName: "validate"})

// Validate checks the struct constraints and that every named component
// exists.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	if _, err := field.ByName(c.Permutation.Field); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "permutation: %v", err)
	}
	if _, err := group.ByName(c.Scheme.Group); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "scheme: %v", err)
	}
	if _, err := reddsa.ExpanderByName(c.Scheme.SeedExpander); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "scheme: %v", err)
	}
	return nil
}
