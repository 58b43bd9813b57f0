package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapUnwrapPrivateKey_RoundTrip(t *testing.T) {
	_, priv, err := GenerateIdentityKeypair()
	require.NoError(t, err)

	bundle, err := WrapPrivateKey(priv, []byte("s3cret"))
	require.NoError(t, err)
	assert.Len(t, bundle.Salt, SaltSize)
	assert.Len(t, bundle.IV, NonceSize)
	assert.NotContains(t, string(bundle.Ciphertext), string(priv))

	got, err := UnwrapPrivateKey(bundle, []byte("s3cret"))
	require.NoError(t, err)
	assert.Equal(t, priv, got)
}

func TestUnwrapPrivateKey_WrongPassword(t *testing.T) {
	_, priv, err := GenerateIdentityKeypair()
	require.NoError(t, err)

	bundle, err := WrapPrivateKey(priv, []byte("s3cret"))
	require.NoError(t, err)

	got, err := UnwrapPrivateKey(bundle, []byte("S3cret"))
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Nil(t, got)
}

func TestUnwrapPrivateKey_CorruptedBundle(t *testing.T) {
	_, priv, err := GenerateIdentityKeypair()
	require.NoError(t, err)
	bundle, err := WrapPrivateKey(priv, []byte("pw"))
	require.NoError(t, err)

	corrupt := func(mutate func(b *WrappedBundle)) *WrappedBundle {
		c := &WrappedBundle{
			Salt:       append([]byte(nil), bundle.Salt...),
			IV:         append([]byte(nil), bundle.IV...),
			Ciphertext: append([]byte(nil), bundle.Ciphertext...),
		}
		mutate(c)
		return c
	}

	tests := []struct {
		name   string
		bundle *WrappedBundle
	}{
		{name: "nil", bundle: nil},
		{name: "flipped ciphertext bit", bundle: corrupt(func(b *WrappedBundle) { b.Ciphertext[0] ^= 1 })},
		{name: "flipped iv bit", bundle: corrupt(func(b *WrappedBundle) { b.IV[0] ^= 1 })},
		{name: "other salt", bundle: corrupt(func(b *WrappedBundle) { b.Salt[0] ^= 1 })},
		{name: "truncated iv", bundle: corrupt(func(b *WrappedBundle) { b.IV = b.IV[:4] })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnwrapPrivateKey(tt.bundle, []byte("pw"))
			assert.ErrorIs(t, err, ErrAuthentication)
		})
	}
}

func TestWrappedBundle_MarshalParse(t *testing.T) {
	_, priv, err := GenerateIdentityKeypair()
	require.NoError(t, err)
	bundle, err := WrapPrivateKey(priv, []byte("pw"))
	require.NoError(t, err)

	raw, err := bundle.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"salt"`)
	assert.Contains(t, string(raw), `"iv"`)
	assert.Contains(t, string(raw), `"ciphertext"`)

	parsed, err := ParseWrappedBundle(raw)
	require.NoError(t, err)

	got, err := UnwrapPrivateKey(parsed, []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, priv, got)

	_, err = ParseWrappedBundle([]byte(`{"salt":""}`))
	assert.Error(t, err)
	_, err = ParseWrappedBundle([]byte(`not json`))
	assert.Error(t, err)
}
