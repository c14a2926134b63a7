package main

import (
	"fmt"

	"github.com/opd-ai/rabin"
	"github.com/spf13/cobra"
)

func newDecryptCmd(config *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt <ciphertext-hex>",
		Short: "Recover the four plaintext candidates of a ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseHex("p", config.p)
			if err != nil {
				return err
			}
			defer rabin.ZeroBytes(p)
			q, err := parseHex("q", config.q)
			if err != nil {
				return err
			}
			defer rabin.ZeroBytes(q)
			c, err := parseHex("ciphertext", args[0])
			if err != nil {
				return err
			}

			candidates, err := rabin.DecryptBytes(c, p, q)
			if err != nil {
				return fmt.Errorf("decryption failed: %w", err)
			}

			out := cmd.OutOrStdout()
			for i, candidate := range candidates {
				fmt.Fprint(out, field(fmt.Sprintf("candidate %d", i+1), candidate))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&config.p, "p", "", "Private prime p in hex")
	cmd.Flags().StringVar(&config.q, "q", "", "Private prime q in hex")

	return cmd
}
