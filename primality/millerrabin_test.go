package primality

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingSource always returns an error.
type failingSource struct{ err error }

func (f failingSource) NextBelow(*big.Int) (*big.Int, error) { return nil, f.err }

// countingSource records how many witnesses were drawn.
type countingSource struct {
	inner RandomSource
	calls int
}

func (c *countingSource) NextBelow(bound *big.Int) (*big.Int, error) {
	c.calls++
	return c.inner.NextBelow(bound)
}

func TestIsProbablePrimeKnownPrimes(t *testing.T) {
	primes := []string{
		"3", "5", "7", "11", "13", "97", "7919", "104729",
		// Mersenne primes 2^31-1, 2^61-1 and 2^127-1.
		"2147483647",
		"2305843009213693951",
		"170141183460469231731687303715884105727",
	}

	for _, s := range primes {
		p, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)
		for _, trials := range []int{1, 5, DefaultTrials} {
			got, err := IsProbablePrime(p, trials, NewCryptoSource())
			require.NoError(t, err)
			assert.True(t, got, "IsProbablePrime(%s, %d) = false, want true", s, trials)
		}
	}
}

func TestIsProbablePrimeKnownComposites(t *testing.T) {
	composites := []int64{
		9, 15, 21, 25, 77, 91, 561, 1105, 1729, 2047, 8911, 1373653,
		7919 * 104729,
	}

	for _, c := range composites {
		got, err := IsProbablePrime(big.NewInt(c), DefaultTrials, NewCryptoSource())
		require.NoError(t, err)
		assert.False(t, got, "IsProbablePrime(%d) = true, want false", c)
	}
}

func TestIsProbablePrimeFixedWitnesses(t *testing.T) {
	tests := []struct {
		name      string
		candidate int64
		witnesses []int64
		want      bool
	}{
		{"carmichael 561 caught by 2", 561, []int64{2}, false},
		{"2047 is a strong pseudoprime to base 2", 2047, []int64{2}, true},
		{"2047 caught by 3", 2047, []int64{3}, false},
		{"25 strong liar 7", 25, []int64{7}, true},
		{"1373653 fools bases 2 and 3", 1373653, []int64{2, 3}, true},
		{"1373653 caught by 5", 1373653, []int64{2, 3, 5}, false},
		{"degenerate witnesses are clamped", 15, []int64{0, 1}, false},
		{"prime with any witness", 104729, []int64{2, 3, 5, 7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsProbablePrime(big.NewInt(tt.candidate), len(tt.witnesses), NewWitnessList(tt.witnesses...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsProbablePrimeSmallAndEvenInputs(t *testing.T) {
	tests := []struct {
		candidate int64
		want      bool
	}{
		{-7, false},
		{0, false},
		{1, false},
		{2, true},
		{3, true},
		{4, false},
		{100, false},
	}

	for _, tt := range tests {
		src := &countingSource{inner: NewCryptoSource()}
		got, err := IsProbablePrime(big.NewInt(tt.candidate), DefaultTrials, src)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "candidate %d", tt.candidate)
		assert.Zero(t, src.calls, "candidate %d should not consume randomness", tt.candidate)
	}
}

func TestIsProbablePrimeShortCircuits(t *testing.T) {
	src := &countingSource{inner: NewWitnessList(2)}
	got, err := IsProbablePrime(big.NewInt(561), DefaultTrials, src)
	require.NoError(t, err)
	assert.False(t, got)
	assert.Equal(t, 1, src.calls)
}

func TestIsProbablePrimeTrialCount(t *testing.T) {
	tests := []struct {
		trials int
		want   int
	}{
		{1, 1},
		{7, 7},
		{0, DefaultTrials},
		{-3, DefaultTrials},
	}

	for _, tt := range tests {
		src := &countingSource{inner: NewCryptoSource()}
		got, err := IsProbablePrime(big.NewInt(7919), tt.trials, src)
		require.NoError(t, err)
		assert.True(t, got)
		assert.Equal(t, tt.want, src.calls, "trials %d", tt.trials)
	}
}

func TestIsProbablePrimeSourceError(t *testing.T) {
	sentinel := errors.New("entropy exhausted")
	_, err := IsProbablePrime(big.NewInt(7919), DefaultTrials, failingSource{err: sentinel})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestTester(t *testing.T) {
	tester := NewTester()
	assert.Equal(t, DefaultTrials, tester.Trials)
	require.NotNil(t, tester.Source)

	ok, err := tester.IsProbablePrime(big.NewInt(65537))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = (&Tester{Trials: 3}).IsProbablePrime(big.NewInt(65535))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		n     int64
		wantD int64
		wantS int
	}{
		{2, 1, 1},
		{560, 35, 4},
		{2046, 1023, 1},
		{1024, 1, 10},
	}

	for _, tt := range tests {
		d, s := decompose(big.NewInt(tt.n))
		assert.Equal(t, tt.wantD, d.Int64(), "d for %d", tt.n)
		assert.Equal(t, tt.wantS, s, "s for %d", tt.n)
	}
}
