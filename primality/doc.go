// Package primality implements probabilistic primality testing and random prime
// generation over arbitrary-precision integers.
//
// The package provides the building blocks for key generation in the Rabin
// cryptosystem: a Miller–Rabin tester, a pluggable source of uniformly
// distributed integers, and a prime generator that combines the two.
//
// # Primality Testing
//
// [IsProbablePrime] runs the Miller–Rabin test with a configurable number of
// rounds. A true verdict means "probably prime" with a false-positive
// probability of at most 4^-trials; a false verdict is definitive.
//
//	ok, err := primality.IsProbablePrime(candidate, primality.DefaultTrials, primality.NewCryptoSource())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A [Tester] bundles the trial count and the random source for repeated use:
//
//	tester := primality.NewTester()
//	ok, err := tester.IsProbablePrime(candidate)
//
// # Random Sources
//
// Witnesses and prime candidates are drawn from a [RandomSource]:
//
//   - [CryptoSource]: backed by crypto/rand, safe for concurrent use
//   - [SeededSource]: deterministic ChaCha20 keystream derived from a seed,
//     for reproducible fixtures
//   - [WitnessList]: a fixed cyclic list of witnesses, for exact test vectors
//
// # Prime Generation
//
// [Generator] samples odd integers of an exact bit length, discards those
// with a small prime factor, and returns the first one certified by its
// [Tester]:
//
//	gen := primality.NewGenerator(primality.NewTester())
//	p, err := gen.NextPrime(512)
//
// # Thread Safety
//
// All functions are free of shared state. Concurrency safety depends only on
// the RandomSource in use: CryptoSource, SeededSource and WitnessList are all
// safe for concurrent use.
package primality
