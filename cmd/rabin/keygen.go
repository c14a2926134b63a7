package main

import (
	"context"
	"fmt"

	"github.com/opd-ai/rabin"
	"github.com/opd-ai/rabin/primality"
	"github.com/spf13/cobra"
)

func newKeygenCmd(config *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a Rabin key pair",
		Long: `Generates two distinct primes p and q, both congruent to 3 mod 4, and
prints them with the public modulus n = p*q.

--seed makes generation reproducible and must never be used for real keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := rabin.NewOptions()
			opts.BitSize = config.bits
			opts.Trials = config.trials
			if config.seed != "" {
				src, err := primality.NewSeededSource([]byte(config.seed))
				if err != nil {
					return err
				}
				opts.Source = src
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if config.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, config.timeout)
				defer cancel()
			}

			kp, err := rabin.GenerateKeyPairContext(ctx, opts)
			if err != nil {
				return fmt.Errorf("key generation failed: %w", err)
			}
			defer rabin.WipeKeyPair(kp)

			p, q := kp.PrivateKey()
			defer rabin.ZeroBytes(p)
			defer rabin.ZeroBytes(q)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, field("modulus", kp.PublicKey()))
			fmt.Fprint(out, field("p", p))
			fmt.Fprint(out, field("q", q))
			return nil
		},
	}

	cmd.Flags().IntVar(&config.bits, "bits", 0, "Bit length of each prime (0 = default 256)")
	cmd.Flags().IntVar(&config.trials, "trials", primality.DefaultTrials, "Miller-Rabin rounds per candidate")
	cmd.Flags().StringVar(&config.seed, "seed", "", "Deterministic seed for reproducible test keys")
	cmd.Flags().DurationVar(&config.timeout, "timeout", 0, "Abort generation after this duration (0 = no limit)")

	return cmd
}
