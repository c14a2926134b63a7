package rabin

import (
	"fmt"
	"math/big"
)

// Encrypt returns m^2 mod n.
//
// m should lie in [0, n). Larger or negative values are reduced modulo n,
// which loses information the caller may have intended to keep. Encryption
// is deterministic: the same m and n always give the same ciphertext.
func Encrypt(m, n *big.Int) *big.Int {
	c := new(big.Int).Mul(m, m)
	return c.Mod(c, n)
}

// EncryptBytes encrypts a big-endian unsigned message under an encoded modulus
// and returns the encoded ciphertext.
func EncryptBytes(message, publicKey []byte) ([]byte, error) {
	m, err := DecodeInt(message)
	if err != nil {
		return nil, fmt.Errorf("decoding message: %w", err)
	}
	n, err := DecodeInt(publicKey)
	if err != nil {
		return nil, fmt.Errorf("decoding public key: %w", err)
	}
	if n.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrInvalidModulus
	}

	return EncodeInt(Encrypt(m, n)), nil
}
