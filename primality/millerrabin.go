package primality

import (
	"fmt"
	"math/big"
)

// DefaultTrials is the number of Miller–Rabin rounds used when none is given.
// Twenty rounds bound the false-positive probability by 4^-20.
const DefaultTrials = 20

// Tester runs Miller–Rabin with a fixed confidence and random source.
type Tester struct {
	Trials int
	Source RandomSource
}

// NewTester returns a Tester with DefaultTrials rounds over crypto/rand.
func NewTester() *Tester {
	return &Tester{
		Trials: DefaultTrials,
		Source: NewCryptoSource(),
	}
}

// IsProbablePrime reports whether candidate passes t.Trials Miller–Rabin rounds.
func (t *Tester) IsProbablePrime(candidate *big.Int) (bool, error) {
	src := t.Source
	if src == nil {
		src = NewCryptoSource()
	}
	return IsProbablePrime(candidate, t.Trials, src)
}

// IsProbablePrime runs the Miller–Rabin test on candidate for the given number
// of rounds, drawing one witness per round from src.
//
// A true result means candidate is prime with error probability at most
// 4^-trials. A false result is definitive. The first failing round ends the
// test. trials below 1 fall back to DefaultTrials.
//
// Candidates below 4 and even candidates are decided without drawing witnesses.
func IsProbablePrime(candidate *big.Int, trials int, src RandomSource) (bool, error) {
	switch {
	case candidate.Cmp(two) < 0:
		return false, nil
	case candidate.Cmp(three) <= 0:
		return true, nil
	case candidate.Bit(0) == 0:
		return false, nil
	}

	if trials < 1 {
		trials = DefaultTrials
	}

	nMinusOne := new(big.Int).Sub(candidate, one)
	d, s := decompose(nMinusOne)

	for i := 0; i < trials; i++ {
		a, err := src.NextBelow(candidate)
		if err != nil {
			return false, fmt.Errorf("drawing witness for round %d: %w", i, err)
		}
		// 0 and 1 never witness compositeness.
		if a.Cmp(two) < 0 {
			a = new(big.Int).Set(two)
		}
		if isCompositeWitness(a, d, s, candidate, nMinusOne) {
			return false, nil
		}
	}
	return true, nil
}

// decompose splits an even n into 2^s * d with d odd.
func decompose(n *big.Int) (d *big.Int, s int) {
	s = int(n.TrailingZeroBits())
	d = new(big.Int).Rsh(n, uint(s))
	return d, s
}

// isCompositeWitness reports whether a proves n composite, given n-1 = 2^s * d.
func isCompositeWitness(a, d *big.Int, s int, n, nMinusOne *big.Int) bool {
	x := ModExp(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return false
	}
	for r := 1; r < s; r++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinusOne) == 0 {
			return false
		}
		// Once x reaches 1 it stays there and can never hit n-1.
		if x.Cmp(one) == 0 {
			return true
		}
	}
	return true
}
