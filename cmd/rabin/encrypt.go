package main

import (
	"fmt"

	"github.com/opd-ai/rabin"
	"github.com/spf13/cobra"
)

func newEncryptCmd(config *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt <message-hex>",
		Short: "Encrypt a message under a public modulus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseHex("modulus", config.modulus)
			if err != nil {
				return err
			}
			m, err := parseHex("message", args[0])
			if err != nil {
				return err
			}

			ct, err := rabin.EncryptBytes(m, n)
			if err != nil {
				return fmt.Errorf("encryption failed: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), field("ciphertext", ct))
			return nil
		},
	}

	cmd.Flags().StringVar(&config.modulus, "modulus", "", "Public modulus n in hex")

	return cmd
}
