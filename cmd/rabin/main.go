// Package main provides a command-line wrapper around the Rabin cryptosystem.
//
// Keys, messages and ciphertexts are read and written as hexadecimal strings
// of big-endian unsigned integers.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CLIConfig holds the flag values shared by all subcommands.
type CLIConfig struct {
	logLevel string
	bits     int
	trials   int
	seed     string
	timeout  time.Duration
	modulus  string
	p        string
	q        string
}

// validateCLIConfig validates the CLI configuration.
func validateCLIConfig(config *CLIConfig) error {
	if _, err := logrus.ParseLevel(config.logLevel); err != nil {
		return fmt.Errorf("invalid log level %q", config.logLevel)
	}
	if config.trials < 0 {
		return fmt.Errorf("trials must not be negative")
	}
	if config.timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// newRootCmd builds the command tree around a fresh configuration.
func newRootCmd() *cobra.Command {
	config := &CLIConfig{}

	root := &cobra.Command{
		Use:   "rabin",
		Short: "Rabin public-key encryption",
		Long: `rabin generates Rabin key pairs, encrypts by modular squaring and
recovers the four plaintext candidates of a ciphertext.

All integers are hexadecimal big-endian unsigned values.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateCLIConfig(config); err != nil {
				return err
			}
			level, _ := logrus.ParseLevel(config.logLevel)
			logrus.SetLevel(level)
			logrus.SetOutput(cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&config.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(newKeygenCmd(config))
	root.AddCommand(newEncryptCmd(config))
	root.AddCommand(newDecryptCmd(config))
	root.AddCommand(newIsPrimeCmd(config))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, Failure.Sprint(strings.TrimSpace(err.Error())))
		os.Exit(1)
	}
}
