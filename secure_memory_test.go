package rabin

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureWipe(t *testing.T) {
	testCases := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{name: "Normal data", data: []byte{1, 2, 3, 4, 5}, wantErr: false},
		{name: "Empty slice", data: []byte{}, wantErr: false},
		{name: "Nil slice", data: nil, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := SecureWipe(tc.data)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tc.data, make([]byte, len(tc.data))), "data not zeroed: %v", tc.data)
		})
	}
}

func TestZeroBytesPrivateKey(t *testing.T) {
	kp, err := GenerateKeyPair(64)
	require.NoError(t, err)

	p, q := kp.PrivateKey()
	ZeroBytes(p)
	ZeroBytes(q)

	assert.Equal(t, make([]byte, len(p)), p)
	assert.Equal(t, make([]byte, len(q)), q)

	// The encodings are copies; the key pair itself is untouched.
	fp, fq := kp.Factors()
	assert.Equal(t, 0, new(big.Int).Mul(fp, fq).Cmp(kp.Modulus()))
}

func TestWipeKeyPair(t *testing.T) {
	kp, err := NewKeyPair(big.NewInt(7), big.NewInt(11))
	require.NoError(t, err)

	require.NoError(t, WipeKeyPair(kp))

	p, q := kp.Factors()
	assert.Zero(t, p.Sign())
	assert.Zero(t, q.Sign())
	assert.Equal(t, int64(77), kp.Modulus().Int64(), "public modulus should survive wiping")

	assert.Error(t, WipeKeyPair(nil))
}

func TestDecryptAfterWipe(t *testing.T) {
	kp, err := NewKeyPair(big.NewInt(7), big.NewInt(11))
	require.NoError(t, err)

	c := kp.Encrypt(big.NewInt(5))
	require.NoError(t, WipeKeyPair(kp))

	assert.NotPanics(t, func() {
		_, err = kp.Decrypt(c)
	})
	assert.ErrorIs(t, err, ErrKeyWiped)

	// Encryption only needs the public modulus.
	assert.Equal(t, int64(25), kp.Encrypt(big.NewInt(5)).Int64())
}

func TestWipeIntClearsWords(t *testing.T) {
	x, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	words := x.Bits()

	wipeInt(x)

	assert.Zero(t, x.Sign())
	for i, w := range words {
		assert.Zero(t, w, "word %d", i)
	}
	wipeInt(nil)
}
