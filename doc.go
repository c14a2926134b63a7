// Package rabin implements the Rabin public-key cryptosystem.
//
// A key pair consists of two distinct primes p and q, both congruent to
// 3 mod 4, and the public modulus n = p*q. Encryption squares the plaintext
// modulo n; decryption computes square roots modulo p and q and combines them
// with the Chinese Remainder Theorem into the four square roots modulo n.
//
// # Key Generation
//
//	kp, err := rabin.GenerateKeyPair(512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rabin.WipeKeyPair(kp)
//
// A non-positive size selects the 256-bit default. Generation resamples until
// suitable primes appear and has no internal deadline; bound it with a context:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//	opts := rabin.NewOptions()
//	opts.BitSize = 1024
//	kp, err := rabin.GenerateKeyPairContext(ctx, opts)
//
// Externally supplied primes are validated on construction:
//
//	kp, err := rabin.NewKeyPair(p, q) // ErrNotBlumPrime, ErrEqualPrimes, ErrCompositeFactor
//
// # Encryption and Decryption
//
//	c := rabin.Encrypt(m, kp.Modulus())
//	roots, err := kp.Decrypt(c)
//	if err == nil && roots.Contains(m) {
//	    // one of the four roots is the plaintext
//	}
//
// Encryption is deterministic and unpadded. Decryption always yields four
// candidates; choosing the right one needs redundancy in the plaintext that
// this package does not add.
//
// # Byte Encoding
//
// Keys, ciphertexts and roots are exchanged as big-endian unsigned integers
// without leading zero bytes:
//
//	ct, err := rabin.EncryptBytes(message, kp.PublicKey())
//	p, q := kp.PrivateKey()
//	candidates, err := rabin.DecryptBytes(ct, p, q)
//
// # Thread Safety
//
// KeyPair is immutable and all cipher functions are pure, so they are safe
// for concurrent use. Key generation shares only its primality.RandomSource.
package rabin
