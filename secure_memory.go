package rabin

import (
	"crypto/subtle"
	"errors"
	"math/big"
	"runtime"
)

// SecureWipe attempts to securely erase the contents of a byte slice
// containing sensitive data, such as an encoded prime from PrivateKey.
// It returns an error if the byte slice is nil.
func SecureWipe(data []byte) error {
	if data == nil {
		return errors.New("cannot wipe nil data")
	}

	zeros := make([]byte, len(data))
	subtle.ConstantTimeCompare(data, zeros)
	copy(data, zeros)

	runtime.KeepAlive(data)
	runtime.KeepAlive(zeros)

	return nil
}

// ZeroBytes erases the contents of a byte slice containing sensitive data.
// This is a convenience function that ignores the error from SecureWipe.
func ZeroBytes(data []byte) {
	_ = SecureWipe(data)
}

// WipeKeyPair overwrites the private primes of kp with zeros. The public
// modulus is kept, so Encrypt still works; Decrypt returns ErrKeyWiped.
func WipeKeyPair(kp *KeyPair) error {
	if kp == nil {
		return errors.New("cannot wipe nil KeyPair")
	}
	wipeInt(kp.p)
	wipeInt(kp.q)
	return nil
}

// wipeInt zeroes the backing words of x and sets it to 0.
func wipeInt(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(words)
	x.SetInt64(0)
}
