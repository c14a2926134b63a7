package rabin

import (
	"context"
	"fmt"
	"math/big"

	"github.com/opd-ai/rabin/limits"
	"github.com/opd-ai/rabin/primality"
	"github.com/sirupsen/logrus"
)

// KeyPair holds the private primes p and q and the public modulus n = p*q.
// Both primes are congruent to 3 mod 4 and distinct. A KeyPair is immutable;
// accessors return copies.
type KeyPair struct {
	p *big.Int
	q *big.Int
	n *big.Int
}

// GenerateKeyPair creates a new random key pair whose primes are bitSize bits
// long. A non-positive bitSize selects limits.DefaultBitSize.
//
// Generation resamples until suitable primes are found and has no internal
// time limit. Use GenerateKeyPairContext to bound it.
func GenerateKeyPair(bitSize int) (*KeyPair, error) {
	opts := NewOptions()
	opts.BitSize = bitSize
	return GenerateKeyPairContext(context.Background(), opts)
}

// GenerateKeyPairContext creates a new random key pair as described by opts.
// ctx is checked between prime draws; a nil opts uses NewOptions().
func GenerateKeyPairContext(ctx context.Context, opts *Options) (*KeyPair, error) {
	if opts == nil {
		opts = NewOptions()
	}

	bits, err := limits.NormalizeBitSize(opts.BitSize)
	if err != nil {
		return nil, err
	}

	gen := primality.NewGenerator(opts.tester())
	return GenerateKeyPairWithGenerator(ctx, gen, bits)
}

// GenerateKeyPairWithGenerator creates a key pair from primes produced by gen.
//
// p is redrawn until p ≡ 3 (mod 4). q is redrawn until q ≡ 3 (mod 4) and
// q != p. bitSize is passed to gen unchanged.
func GenerateKeyPairWithGenerator(ctx context.Context, gen primality.PrimeGenerator, bitSize int) (*KeyPair, error) {
	logger := NewLogger("GenerateKeyPair").WithField("bit_size", bitSize)
	logger.Entry("generating Rabin key pair")
	defer logger.Exit()

	p, pDraws, err := drawBlumPrime(ctx, gen, bitSize, nil)
	if err != nil {
		logger.WithError(err, "generation_failed", "draw_p").Error("Failed to generate prime p")
		return nil, fmt.Errorf("generating p: %w", err)
	}

	q, qDraws, err := drawBlumPrime(ctx, gen, bitSize, p)
	if err != nil {
		logger.WithError(err, "generation_failed", "draw_q").Error("Failed to generate prime q")
		return nil, fmt.Errorf("generating q: %w", err)
	}

	kp := &KeyPair{
		p: p,
		q: q,
		n: new(big.Int).Mul(p, q),
	}

	logger.WithFields(modulusFields(kp.n)).
		WithFields(logrus.Fields{"p_draws": pDraws, "q_draws": qDraws}).
		Debug("Key pair generated")

	return kp, nil
}

// drawBlumPrime draws primes from gen until one is congruent to 3 mod 4 and
// differs from exclude. It returns the prime and the number of draws taken.
func drawBlumPrime(ctx context.Context, gen primality.PrimeGenerator, bits int, exclude *big.Int) (*big.Int, int, error) {
	for draws := 1; ; draws++ {
		if err := ctx.Err(); err != nil {
			return nil, draws - 1, fmt.Errorf("key generation interrupted: %w", err)
		}

		candidate, err := gen.NextPrime(bits)
		if err != nil {
			return nil, draws, err
		}

		reason := ""
		switch {
		case !isThreeModFour(candidate):
			reason = "not_3_mod_4"
		case exclude != nil && candidate.Cmp(exclude) == 0:
			reason = "equal_to_p"
		default:
			return candidate, draws, nil
		}
		NewLogger("drawBlumPrime").
			WithFields(logrus.Fields{"draw": draws, "bits": bits, "reason": reason}).
			Debug("Prime draw rejected")
	}
}

// isThreeModFour reports whether x is positive and x mod 4 == 3.
func isThreeModFour(x *big.Int) bool {
	return x.Sign() > 0 && x.Bit(0) == 1 && x.Bit(1) == 1
}

// NewKeyPair builds a key pair from externally supplied primes after checking
// that both are probable primes, congruent to 3 mod 4 and distinct.
// The arguments are copied.
func NewKeyPair(p, q *big.Int) (*KeyPair, error) {
	if err := validateFactors(p, q); err != nil {
		return nil, err
	}

	tester := primality.NewTester()
	for _, f := range []struct {
		name  string
		value *big.Int
	}{{"p", p}, {"q", q}} {
		ok, err := tester.IsProbablePrime(f.value)
		if err != nil {
			return nil, fmt.Errorf("testing %s: %w", f.name, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrCompositeFactor, f.name)
		}
	}

	pc := new(big.Int).Set(p)
	qc := new(big.Int).Set(q)
	return &KeyPair{p: pc, q: qc, n: new(big.Int).Mul(pc, qc)}, nil
}

// KeyPairFromBytes decodes big-endian unsigned primes and calls NewKeyPair.
func KeyPairFromBytes(pBytes, qBytes []byte) (*KeyPair, error) {
	p, err := DecodeInt(pBytes)
	if err != nil {
		return nil, fmt.Errorf("decoding p: %w", err)
	}
	q, err := DecodeInt(qBytes)
	if err != nil {
		return nil, fmt.Errorf("decoding q: %w", err)
	}

	logger := NewLogger("KeyPairFromBytes").WithCaller()
	kp, err := NewKeyPair(p, q)
	if err != nil {
		logger.WithError(err, "invalid_key", "validate_factors").Warn("Rejected private key")
		return nil, err
	}
	logger.WithFields(modulusFields(kp.n)).Info("Private key loaded")
	return kp, nil
}

// validateFactors checks the structural invariants decryption relies on.
// It does not test primality.
func validateFactors(p, q *big.Int) error {
	if p == nil || q == nil {
		return ErrNilKey
	}
	if !isThreeModFour(p) {
		return fmt.Errorf("%w: p", ErrNotBlumPrime)
	}
	if !isThreeModFour(q) {
		return fmt.Errorf("%w: q", ErrNotBlumPrime)
	}
	if p.Cmp(q) == 0 {
		return ErrEqualPrimes
	}
	return nil
}

// Modulus returns a copy of the public modulus n.
func (kp *KeyPair) Modulus() *big.Int {
	return new(big.Int).Set(kp.n)
}

// Factors returns copies of the private primes p and q.
func (kp *KeyPair) Factors() (p, q *big.Int) {
	return new(big.Int).Set(kp.p), new(big.Int).Set(kp.q)
}

// PublicKey returns the encoded modulus n.
func (kp *KeyPair) PublicKey() []byte {
	return EncodeInt(kp.n)
}

// PrivateKey returns the encoded primes p and q.
func (kp *KeyPair) PrivateKey() (p, q []byte) {
	return EncodeInt(kp.p), EncodeInt(kp.q)
}

// Encrypt encrypts m under the key pair's modulus.
func (kp *KeyPair) Encrypt(m *big.Int) *big.Int {
	return Encrypt(m, kp.n)
}

// Decrypt returns the four square roots of c modulo n. It returns
// ErrKeyWiped once WipeKeyPair has erased the private primes.
func (kp *KeyPair) Decrypt(c *big.Int) (Roots, error) {
	if kp.p.Sign() == 0 || kp.q.Sign() == 0 {
		return Roots{}, ErrKeyWiped
	}
	return Decrypt(c, kp.p, kp.q), nil
}
