// Package limits provides centralized key-size constants and input validation
// functions for the Rabin cryptosystem. This package ensures consistent size
// enforcement between key generation and the byte-level cipher API.
//
// # Key Sizes
//
//   - DefaultBitSize (256 bits): The prime bit length used when the caller passes
//     a non-positive size. Each of p and q gets this many bits.
//
//   - MaxBitSize (8192 bits): The largest prime bit length accepted. Requests above
//     this bound are rejected before any sampling starts.
//
//   - MaxModulusBytes (2048 bytes): The encoded size of a modulus built from two
//     MaxBitSize primes.
//
// # Validation Functions
//
// Key sizes are normalized before generation:
//
//	bits, err := limits.NormalizeBitSize(requested)
//	if err != nil {
//	    // Handle ErrBitSizeTooSmall or ErrBitSizeTooLarge
//	}
//
// Encoded integers are checked for emptiness and size:
//
//	err := limits.ValidateEncodedInteger(ciphertext)
//
// For custom size limits, use the generic ValidateEncodedSize function:
//
//	err := limits.ValidateEncodedSize(data, 64)
//
// # Error Types
//
//   - ErrEmptyInput: Returned when an empty or nil encoding is provided
//   - ErrInputTooLarge: Returned when an encoding exceeds the specified limit
//   - ErrBitSizeTooSmall: Returned when a key size below MinBitSize is requested
//   - ErrBitSizeTooLarge: Returned when a key size above MaxBitSize is requested
package limits
