package rabin

import (
	"fmt"
	"math/big"
)

// Roots holds the four square roots of a ciphertext modulo n, in the order
// r1, n-r1, r3, n-r3. Generically exactly one of them is the plaintext; the
// scheme itself cannot tell which.
type Roots [4]*big.Int

// Contains reports whether m is one of the roots.
func (r Roots) Contains(m *big.Int) bool {
	for _, root := range r {
		if root != nil && root.Cmp(m) == 0 {
			return true
		}
	}
	return false
}

// Bytes returns the big-endian unsigned encoding of each root.
func (r Roots) Bytes() [4][]byte {
	var out [4][]byte
	for i, root := range r {
		out[i] = EncodeInt(root)
	}
	return out
}

// Decrypt returns the four square roots of c modulo n = p*q.
//
// p and q must be distinct primes congruent to 3 mod 4. Other inputs give
// wrong roots without an error; NewKeyPair enforces the invariant.
func Decrypt(c, p, q *big.Int) Roots {
	n := new(big.Int).Mul(p, q)

	mp := new(big.Int).Exp(c, sqrtExponent(p), p)
	mq := new(big.Int).Exp(c, sqrtExponent(q), q)

	_, yp, yq := extendedGCD(p, q)

	// yp*p ≡ 1 (mod q) and yq*q ≡ 1 (mod p).
	a := new(big.Int).Mul(yp, p)
	a.Mul(a, mq)
	b := new(big.Int).Mul(yq, q)
	b.Mul(b, mp)

	r1 := new(big.Int).Add(a, b)
	r1.Mod(r1, n)
	r3 := new(big.Int).Sub(a, b)
	r3.Mod(r3, n)

	return Roots{r1, negMod(r1, n), r3, negMod(r3, n)}
}

// sqrtExponent returns (p+1)/4.
func sqrtExponent(p *big.Int) *big.Int {
	e := new(big.Int).Add(p, big.NewInt(1))
	return e.Rsh(e, 2)
}

// negMod returns (n - x) mod n for x in [0, n).
func negMod(x, n *big.Int) *big.Int {
	r := new(big.Int).Sub(n, x)
	return r.Mod(r, n)
}

// DecryptBytes decrypts an encoded ciphertext with encoded primes p and q and
// returns the four encoded roots.
//
// The primes are checked for the 3 mod 4 congruence and distinctness but not
// for primality; use KeyPairFromBytes for full validation.
func DecryptBytes(ciphertext, pBytes, qBytes []byte) ([4][]byte, error) {
	c, err := DecodeInt(ciphertext)
	if err != nil {
		return [4][]byte{}, fmt.Errorf("decoding ciphertext: %w", err)
	}
	p, err := DecodeInt(pBytes)
	if err != nil {
		return [4][]byte{}, fmt.Errorf("decoding p: %w", err)
	}
	q, err := DecodeInt(qBytes)
	if err != nil {
		return [4][]byte{}, fmt.Errorf("decoding q: %w", err)
	}

	if err := validateFactors(p, q); err != nil {
		NewLogger("DecryptBytes").
			WithCaller().
			WithError(err, "invalid_key", "validate_factors").
			Warn("Rejected private key")
		return [4][]byte{}, err
	}

	return Decrypt(c, p, q).Bytes(), nil
}
