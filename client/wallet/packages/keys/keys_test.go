package keys

import (
	"crypto/rand"
	"testing"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/funds-tools/packages/ledgerstate"
)

func TestKeyFromBase58EncodedString_Seed(t *testing.T) {
	seedBytes := make([]byte, ed25519.SeedSize)
	_, err := rand.Read(seedBytes)
	require.NoError(t, err)

	key, err := KeyFromBase58EncodedString(base58.Encode(seedBytes))
	require.NoError(t, err)

	expectedPrivateKey := ed25519.PrivateKeyFromSeed(seedBytes)
	assert.Equal(t, expectedPrivateKey.Public(), key.PublicKey())
	assert.True(t, key.Address().Equals(ledgerstate.NewAddress(expectedPrivateKey.Public())))
}

func TestKeyFromBase58EncodedString_PrivateKey(t *testing.T) {
	keyPair := ed25519.GenerateKeyPair()

	key, err := KeyFromBase58EncodedString(base58.Encode(keyPair.PrivateKey.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, keyPair.PublicKey, key.PublicKey())

	data := []byte("payload signed with the decoded key")
	assert.True(t, keyPair.PublicKey.VerifySignature(data, key.Sign(data)))
}

func TestKeyFromBase58EncodedString_Invalid(t *testing.T) {
	_, err := KeyFromBase58EncodedString("not-valid-base58-0OIl")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyDecodeFailed)

	_, err = KeyFromBase58EncodedString(base58.Encode([]byte{1, 2, 3}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyDecodeFailed)
}

func TestKey_Sign(t *testing.T) {
	keyPair := ed25519.GenerateKeyPair()
	key := NewKey(keyPair)

	data := []byte("some signed payload")
	signature := key.Sign(data)

	assert.True(t, keyPair.PublicKey.VerifySignature(data, signature))
}
