// Package app wires the signing stack for the CLI.
//
// It resolves the permutation parameters, group backend and seed expander
// named by a config.Config and exposes them via the Wire struct.
package app
