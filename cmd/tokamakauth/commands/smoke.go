package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"tokamakauth/internal/app"
)

func smokeCmd() *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Sign and verify with fresh random keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			res, err := w.Smoke(iterations, nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d iterations ok\n", res.Iterations)
			fmt.Fprintf(out, "pk: %s\n", hex.EncodeToString(res.PublicKey))
			fmt.Fprintf(out, "R:  %s\n", hex.EncodeToString(res.Signature.R))
			fmt.Fprintf(out, "S:  %s\n", hex.EncodeToString(res.Signature.S[:]))
			return nil
		},
	}
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 101, "number of sign/verify rounds")
	return cmd
}
