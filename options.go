package rabin

import (
	"github.com/opd-ai/rabin/limits"
	"github.com/opd-ai/rabin/primality"
)

// Options contains configuration options for key generation.
type Options struct {
	// BitSize is the bit length of each prime factor. Non-positive values
	// select limits.DefaultBitSize.
	BitSize int

	// Trials is the number of Miller–Rabin rounds per candidate.
	Trials int

	// Source supplies witnesses and prime candidates. It must be safe for
	// concurrent use when keys are generated from several goroutines.
	Source primality.RandomSource
}

// NewOptions creates a new default options.
func NewOptions() *Options {
	return &Options{
		BitSize: limits.DefaultBitSize,
		Trials:  primality.DefaultTrials,
		Source:  primality.NewCryptoSource(),
	}
}

// tester builds the Miller–Rabin tester described by the options.
func (o *Options) tester() *primality.Tester {
	source := o.Source
	if source == nil {
		source = primality.NewCryptoSource()
	}
	return &primality.Tester{Trials: o.Trials, Source: source}
}
