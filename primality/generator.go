package primality

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"
)

// ErrBitLength indicates a prime of the requested size cannot be sampled.
var ErrBitLength = errors.New("prime bit length must be at least 2")

// PrimeGenerator produces random primes of a requested bit length.
type PrimeGenerator interface {
	NextPrime(bits int) (*big.Int, error)
}

// smallPrimes are the odd primes whose product fits in a uint64.
var smallPrimes = []uint64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53}

// smallPrimesProduct is the product of smallPrimes.
var smallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// Generator samples odd integers of an exact bit length and returns the first
// one its Tester certifies as probably prime.
type Generator struct {
	tester *Tester
	source RandomSource
}

// NewGenerator creates a Generator that draws candidates from the tester's
// source. A nil tester is replaced by NewTester().
func NewGenerator(tester *Tester) *Generator {
	if tester == nil {
		tester = NewTester()
	}
	source := tester.Source
	if source == nil {
		source = NewCryptoSource()
	}
	return &Generator{tester: tester, source: source}
}

// NextPrime returns a probable prime p with 2^(bits-1) <= p < 2^bits.
// It keeps sampling until a candidate passes; callers needing bounded latency
// must bound the call externally.
func (g *Generator) NextPrime(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBitLength, bits)
	}

	floor := new(big.Int).Lsh(one, uint(bits-1))
	for attempt := 1; ; attempt++ {
		candidate, err := g.source.NextBelow(floor)
		if err != nil {
			return nil, fmt.Errorf("sampling prime candidate: %w", err)
		}
		candidate.Add(candidate, floor)
		candidate.SetBit(candidate, 0, 1)

		if hasSmallFactor(candidate) {
			continue
		}

		ok, err := g.tester.IsProbablePrime(candidate)
		if err != nil {
			return nil, fmt.Errorf("testing prime candidate: %w", err)
		}
		if ok {
			logrus.WithFields(logrus.Fields{
				"function": "NextPrime",
				"package":  "primality",
				"bits":     bits,
				"attempts": attempt,
			}).Debug("Prime candidate accepted")
			return candidate, nil
		}
	}
}

// hasSmallFactor reports whether n is a proper multiple of one of smallPrimes.
// A small prime itself is not rejected.
func hasSmallFactor(n *big.Int) bool {
	if n.IsUint64() {
		v := n.Uint64()
		for _, p := range smallPrimes {
			if v == p {
				return false
			}
		}
	}

	r := new(big.Int).Mod(n, smallPrimesProduct).Uint64()
	for _, p := range smallPrimes {
		if r%p == 0 {
			return true
		}
	}
	return false
}
