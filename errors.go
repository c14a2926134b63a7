package rabin

import "errors"

// Key construction errors indicate primes that cannot form a Rabin key.
var (
	// ErrNilKey indicates a missing prime or modulus.
	ErrNilKey = errors.New("key component is nil")

	// ErrNotBlumPrime indicates a factor that is not congruent to 3 mod 4.
	// Decryption computes square roots with the (p+1)/4 exponent, which is
	// only correct for such primes.
	ErrNotBlumPrime = errors.New("prime is not congruent to 3 mod 4")

	// ErrEqualPrimes indicates p and q are the same value.
	ErrEqualPrimes = errors.New("primes must be distinct")

	// ErrCompositeFactor indicates a supplied factor failed the primality test.
	ErrCompositeFactor = errors.New("factor is not prime")

	// ErrKeyWiped indicates the private primes were erased by WipeKeyPair.
	ErrKeyWiped = errors.New("private key has been wiped")
)

// Cipher errors indicate invalid byte-level inputs.
var (
	// ErrInvalidModulus indicates a public key that cannot serve as a modulus.
	ErrInvalidModulus = errors.New("modulus must be at least 2")
)
