// Package config loads the TOML configuration that selects permutation
// parameters, the group backend, the seed expander and the domain-separation
// tags. Keys absent from a file keep their Default values.
package config
