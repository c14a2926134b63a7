package main

import (
	"fmt"

	"github.com/opd-ai/rabin/primality"
	"github.com/spf13/cobra"
)

func newIsPrimeCmd(config *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "isprime <integer>",
		Short: "Run the Miller-Rabin test on an integer",
		Long: `Runs the Miller-Rabin test on a decimal or 0x-prefixed hexadecimal integer.
"probably prime" has an error probability of at most 4^-trials; "composite" is certain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInteger(args[0])
			if err != nil {
				return err
			}

			tester := &primality.Tester{Trials: config.trials, Source: primality.NewCryptoSource()}
			ok, err := tester.IsProbablePrime(n)
			if err != nil {
				return fmt.Errorf("primality test failed: %w", err)
			}

			verdict := Negative.Sprint("composite")
			if ok {
				verdict = Success.Sprint("probably prime")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", n.String(), verdict)
			return nil
		},
	}

	cmd.Flags().IntVar(&config.trials, "trials", primality.DefaultTrials, "Miller-Rabin rounds")

	return cmd
}
