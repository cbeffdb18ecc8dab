// Package commands defines the tokamakauth CLI.
//
// Commands
//
//   - params gen     Generate a permutation parameter file
//   - params check   Load and validate a parameter file
//   - smoke          Run the sign/verify self-test
//
// # Implementation
//
// The root command loads the TOML configuration (or the defaults) and sets
// the log level before any subcommand runs. Subcommands that sign build the
// full dependency graph with app.NewWire.
package commands
