// Package limits provides centralized size limits for Rabin keys and encoded integers.
// This ensures consistent validation across key generation and the byte-level API.
package limits

import (
	"errors"
	"fmt"
)

const (
	// DefaultBitSize is the bit length of each prime factor when the caller
	// does not request one. A 256-bit p and q give a 512-bit modulus.
	DefaultBitSize = 256

	// MinBitSize is the shortest prime bit length with two distinct primes
	// congruent to 3 mod 4 (19, 23 and 31). Shorter requests could never finish.
	MinBitSize = 5

	// MaxBitSize is the largest prime bit length accepted for key generation.
	// Larger requests would run for minutes and are rejected up front.
	MaxBitSize = 8192

	// MaxModulusBytes is the encoded size of the largest modulus MaxBitSize primes can produce
	MaxModulusBytes = 2 * MaxBitSize / 8

	// MaxEncodedInteger is the absolute maximum for any encoded integer input.
	// Plaintexts and ciphertexts are below the modulus, so this bounds them too.
	MaxEncodedInteger = MaxModulusBytes
)

var (
	// ErrEmptyInput indicates an empty byte encoding was provided
	ErrEmptyInput = errors.New("empty input")

	// ErrInputTooLarge indicates an encoded integer exceeds the maximum size
	ErrInputTooLarge = errors.New("input too large")

	// ErrBitSizeTooLarge indicates a key size above MaxBitSize was requested
	ErrBitSizeTooLarge = errors.New("bit size too large")

	// ErrBitSizeTooSmall indicates a positive key size below MinBitSize was requested
	ErrBitSizeTooSmall = errors.New("bit size too small")
)

// NormalizeBitSize maps a requested prime bit length onto the one used for
// generation. Non-positive values select DefaultBitSize.
// Returns an error with context if the request lies outside [MinBitSize, MaxBitSize].
func NormalizeBitSize(bits int) (int, error) {
	if bits <= 0 {
		return DefaultBitSize, nil
	}
	if bits < MinBitSize {
		return 0, fmt.Errorf("%w: %d is below minimum %d", ErrBitSizeTooSmall, bits, MinBitSize)
	}
	if bits > MaxBitSize {
		return 0, fmt.Errorf("%w: %d exceeds limit %d", ErrBitSizeTooLarge, bits, MaxBitSize)
	}
	return bits, nil
}

// ValidateEncodedSize validates an encoded integer against the specified maximum size.
// Returns an error with context including the actual and maximum sizes.
func ValidateEncodedSize(data []byte, maxSize int) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > maxSize {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrInputTooLarge, len(data), maxSize)
	}
	return nil
}

// ValidateEncodedInteger validates data against MaxEncodedInteger.
// This limit should be used for all untrusted byte input.
func ValidateEncodedInteger(data []byte) error {
	return ValidateEncodedSize(data, MaxEncodedInteger)
}
