package rabin

import (
	"math/big"

	"github.com/opd-ai/rabin/limits"
)

// EncodeInt returns the big-endian unsigned encoding of x with no leading
// zero bytes. Zero encodes as a single zero byte so that every value has a
// non-empty encoding.
func EncodeInt(x *big.Int) []byte {
	if x.Sign() == 0 {
		return []byte{0}
	}
	return x.Bytes()
}

// DecodeInt parses a big-endian unsigned encoding. Leading zero bytes are
// accepted and ignored.
func DecodeInt(data []byte) (*big.Int, error) {
	if err := limits.ValidateEncodedInteger(data); err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(data), nil
}
