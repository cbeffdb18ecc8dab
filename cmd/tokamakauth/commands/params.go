package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tokamakauth/internal/app"
	"tokamakauth/internal/poseidon"
)

func paramsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Generate or check permutation parameter files",
	}
	cmd.AddCommand(paramsGenCmd(), paramsCheckCmd())
	return cmd
}

func paramsGenCmd() *cobra.Command {
	var (
		out           string
		fieldName     string
		width         int
		fullRounds    int
		partialRounds int
		sboxPower     int
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate parameters with the Grain LFSR and write them as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			pc := cfg.Permutation
			flags := cmd.Flags()
			if flags.Changed("field") {
				pc.Field = fieldName
			}
			if flags.Changed("t") {
				pc.Width = width
			}
			if flags.Changed("rounds-full") {
				pc.FullRounds = fullRounds
			}
			if flags.Changed("rounds-partial") {
				pc.PartialRounds = partialRounds
			}
			if flags.Changed("sbox-power") {
				pc.SboxPower = sboxPower
			}

			p, err := app.GenerateParams(pc)
			if err != nil {
				return err
			}
			if err := poseidon.SaveFile(out, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (field=%s t=%d roundsFull=%d roundsPartial=%d sboxPower=%d fingerprint=%s)\n",
				out, p.Field.Name(), p.Width, p.FullRounds, p.PartialRounds, p.SboxPower, p.Fingerprint())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().StringVar(&fieldName, "field", "", "field identifier (default from config)")
	cmd.Flags().IntVar(&width, "t", 0, "state width (default from config)")
	cmd.Flags().IntVar(&fullRounds, "rounds-full", 0, "number of full rounds (default from config)")
	cmd.Flags().IntVar(&partialRounds, "rounds-partial", 0, "number of partial rounds (default from config)")
	cmd.Flags().IntVar(&sboxPower, "sbox-power", 0, "S-box exponent (default from config)")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func paramsCheckCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a parameter file and compare it with regenerated constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := poseidon.LoadFile(in)
			if err != nil {
				return err
			}
			regen, err := poseidon.Generate(p.Field, p.Width, p.FullRounds, p.PartialRounds, p.SboxPower)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "field:         %s (%d bits)\n", p.Field.Name(), p.Field.Bits())
			fmt.Fprintf(w, "t:             %d\n", p.Width)
			fmt.Fprintf(w, "rounds:        %d full, %d partial\n", p.FullRounds, p.PartialRounds)
			fmt.Fprintf(w, "sboxPower:     %d\n", p.SboxPower)
			fmt.Fprintf(w, "fingerprint:   %s\n", p.Fingerprint())
			fmt.Fprintf(w, "grain match:   %t\n", regen.Equal(p))
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "parameter file")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
