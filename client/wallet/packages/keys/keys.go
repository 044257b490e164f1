// Package keys provides the signing keys that the wallet uses to control funds on the ledger.
package keys

import (
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/mr-tron/base58"

	"github.com/iotaledger/funds-tools/packages/ledgerstate"
)

// region Key //////////////////////////////////////////////////////////////////////////////////////////////////////////

// Key represents the private key material that controls the funds on a single Address.
type Key struct {
	keyPair ed25519.KeyPair
}

// NewKey creates a new Key from the given KeyPair.
func NewKey(keyPair ed25519.KeyPair) *Key {
	return &Key{
		keyPair: keyPair,
	}
}

// KeyFromBase58EncodedString creates a Key from a base58 encoded private key. It accepts both a 32 byte seed and a full
// 64 byte private key.
func KeyFromBase58EncodedString(base58EncodedKey string) (key *Key, err error) {
	decodedBytes, err := base58.Decode(base58EncodedKey)
	if err != nil {
		err = errors.Errorf("error while decoding base58 encoded private key (%v): %w", err, ErrKeyDecodeFailed)
		return
	}

	switch len(decodedBytes) {
	case ed25519.SeedSize:
		var seed [ed25519.SeedSize]byte
		copy(seed[:], decodedBytes)
		privateKey := ed25519.PrivateKeyFromSeed(seed[:])

		return NewKey(ed25519.KeyPair{
			PrivateKey: privateKey,
			PublicKey:  privateKey.Public(),
		}), nil
	case ed25519.PrivateKeySize:
		privateKey, pErr, _ := ed25519.PrivateKeyFromBytes(decodedBytes)
		if pErr != nil {
			err = errors.Errorf("error while parsing private key bytes (%v): %w", pErr, ErrKeyDecodeFailed)
			return
		}

		return NewKey(ed25519.KeyPair{
			PrivateKey: privateKey,
			PublicKey:  privateKey.Public(),
		}), nil
	default:
		err = errors.Errorf("private key must be %d or %d bytes long instead of %d: %w", ed25519.SeedSize,
			ed25519.PrivateKeySize, len(decodedBytes), ErrKeyDecodeFailed)
		return
	}
}

// Address returns the Address that is controlled by the Key.
func (k *Key) Address() ledgerstate.Address {
	return ledgerstate.NewAddress(k.keyPair.PublicKey)
}

// PublicKey returns the public part of the Key.
func (k *Key) PublicKey() ed25519.PublicKey {
	return k.keyPair.PublicKey
}

// Sign signs the given data and returns the resulting signature.
func (k *Key) Sign(data []byte) ed25519.Signature {
	return k.keyPair.PrivateKey.Sign(data)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region errors ///////////////////////////////////////////////////////////////////////////////////////////////////////

// ErrKeyDecodeFailed is returned when the provided key material can not be decoded into a usable private key.
var ErrKeyDecodeFailed = errors.New("failed to decode private key")

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
