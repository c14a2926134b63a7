package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Label formats field names such as "modulus" or "candidate 1".
	Label = Formatter{color.New(color.FgCyan), "", ""}

	// Value formats hexadecimal integers.
	Value = Formatter{color.New(color.FgYellow), "", ""}

	// Success formats positive verdicts.
	Success = Formatter{color.New(color.FgGreen), "", ""}

	// Negative formats negative verdicts such as "composite".
	Negative = Formatter{color.New(color.FgRed), "", ""}

	// Failure formats errors.
	Failure = Formatter{color.New(color.FgRed), "error: ", ""}
)

// field renders one "label: value" line.
func field(label string, value []byte) string {
	return fmt.Sprintf("%s: %s\n", Label.Sprint(label), Value.Sprint(hex.EncodeToString(value)))
}

// parseHex decodes a hexadecimal integer. A leading "0x" and an odd number of
// digits are accepted.
func parseHex(name, s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if s == "" {
		return nil, fmt.Errorf("%s is required", name)
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid hex: %w", name, err)
	}
	return data, nil
}

// parseInteger accepts decimal or 0x-prefixed hexadecimal input.
func parseInteger(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("%q is not an integer", s)
	}
	return n, nil
}
