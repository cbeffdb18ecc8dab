package commands

import (
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/spf13/cobra"

	"tokamakauth/internal/config"
)

var (
	configPath string
	logLevel   string
	cfg        config.Config
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tokamakauth",
		Short:        "RedDSA signatures with a Poseidon challenge hash",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.SetLogLevel(logLevel); err != nil {
				return err
			}
			if configPath == "" {
				cfg = config.Default()
				return nil
			}
			var err error
			cfg, err = config.Load(configPath)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (default: built-in defaults)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "*:INFO", "log level, e.g. *:DEBUG or tokamakauth/poseidon:TRACE")

	root.AddCommand(paramsCmd(), smokeCmd())
	return root
}
