package primality

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// ErrInvalidBound is returned when a RandomSource is asked for a value below a
// non-positive bound.
var ErrInvalidBound = errors.New("bound must be positive")

// RandomSource supplies uniformly distributed non-negative integers.
// Implementations must be safe for concurrent use.
type RandomSource interface {
	// NextBelow returns a uniformly distributed integer in [0, bound).
	NextBelow(bound *big.Int) (*big.Int, error)
}

// CryptoSource draws integers from a cryptographically secure reader.
type CryptoSource struct {
	Reader io.Reader
}

// NewCryptoSource returns a CryptoSource backed by crypto/rand.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{Reader: rand.Reader}
}

// NextBelow returns a uniform integer in [0, bound).
func (s *CryptoSource) NextBelow(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, ErrInvalidBound
	}
	reader := s.Reader
	if reader == nil {
		reader = rand.Reader
	}
	n, err := rand.Int(reader, bound)
	if err != nil {
		return nil, fmt.Errorf("reading random integer: %w", err)
	}
	return n, nil
}

// SeededSource is a deterministic RandomSource driven by a ChaCha20 keystream.
// Two sources created from the same seed produce the same sequence of values.
// It is intended for reproducible tests and fixtures, not for production keys.
type SeededSource struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
}

// NewSeededSource derives a ChaCha20 key and nonce from seed with BLAKE2b-512.
func NewSeededSource(seed []byte) (*SeededSource, error) {
	digest := blake2b.Sum512(seed)
	defer clear(digest[:])

	stream, err := chacha20.NewUnauthenticatedCipher(digest[:chacha20.KeySize], digest[chacha20.KeySize:chacha20.KeySize+chacha20.NonceSize])
	if err != nil {
		return nil, fmt.Errorf("initializing keystream: %w", err)
	}
	return &SeededSource{stream: stream}, nil
}

// Read fills p with keystream bytes. It never fails.
func (s *SeededSource) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range p {
		p[i] = 0
	}
	s.stream.XORKeyStream(p, p)
	return len(p), nil
}

// NextBelow returns a uniform integer in [0, bound) using rejection sampling
// over the keystream.
func (s *SeededSource) NextBelow(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, ErrInvalidBound
	}
	return uniformBelow(s, bound)
}

// uniformBelow reads just enough bytes to cover bound's bit length, masks the
// excess high bits and retries until the value falls below bound.
func uniformBelow(r io.Reader, bound *big.Int) (*big.Int, error) {
	bits := bound.BitLen()
	buf := make([]byte, (bits+7)/8)
	excess := uint(len(buf)*8 - bits)
	n := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("reading random bytes: %w", err)
		}
		buf[0] &= byte(0xff >> excess)
		n.SetBytes(buf)
		if n.Cmp(bound) < 0 {
			return n, nil
		}
	}
}

// WitnessList replays a fixed list of values in order, wrapping around at the
// end. Values are reduced modulo the requested bound. It makes Miller–Rabin
// verdicts exact for known fixtures.
type WitnessList struct {
	mu     sync.Mutex
	values []*big.Int
	next   int
}

// NewWitnessList creates a WitnessList from small integer witnesses.
func NewWitnessList(values ...int64) *WitnessList {
	wl := &WitnessList{values: make([]*big.Int, len(values))}
	for i, v := range values {
		wl.values[i] = big.NewInt(v)
	}
	return wl
}

// NextBelow returns the next witness modulo bound.
func (wl *WitnessList) NextBelow(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, ErrInvalidBound
	}

	wl.mu.Lock()
	defer wl.mu.Unlock()

	if len(wl.values) == 0 {
		return new(big.Int), nil
	}
	v := wl.values[wl.next%len(wl.values)]
	wl.next++
	return new(big.Int).Mod(v, bound), nil
}
