package ledgerstate

import (
	"bytes"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/cerrors"
	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/iotaledger/hive.go/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// region Address //////////////////////////////////////////////////////////////////////////////////////////////////////

// AddressVersion is the version byte that prefixes the digest in the serialized form of an Address.
const AddressVersion byte = 0

// AddressDigestLength contains the length of the blake2b hash of the public key that backs an Address.
const AddressDigestLength = 32

// AddressLength contains the length of a marshaled Address (version byte + digest).
const AddressLength = 1 + AddressDigestLength

// Address represents an Address that is secured by the ED25519 signature scheme.
type Address struct {
	digest []byte
}

// NewAddress creates a new Address from the given public key.
func NewAddress(publicKey ed25519.PublicKey) Address {
	digest := blake2b.Sum256(publicKey[:])

	return Address{
		digest: digest[:],
	}
}

// AddressFromBytes unmarshals an Address from a sequence of bytes.
func AddressFromBytes(data []byte) (address Address, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(data)
	if address, err = AddressFromMarshalUtil(marshalUtil); err != nil {
		err = errors.Errorf("failed to parse Address from MarshalUtil: %w", err)
		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// AddressFromBase58EncodedString creates an Address from a base58 encoded string.
func AddressFromBase58EncodedString(base58String string) (address Address, err error) {
	decodedBytes, err := base58.Decode(base58String)
	if err != nil {
		err = errors.Errorf("error while decoding base58 encoded Address (%v): %w", err, cerrors.ErrBase58DecodeFailed)
		return
	}

	if address, _, err = AddressFromBytes(decodedBytes); err != nil {
		err = errors.Errorf("failed to parse Address from bytes: %w", err)
		return
	}

	return
}

// AddressFromBech32EncodedString creates an Address from a bech32 encoded string and returns the human-readable part
// it was encoded with.
func AddressFromBech32EncodedString(bech32String string) (hrp string, address Address, err error) {
	hrp, fiveBitWords, err := bech32.Decode(bech32String)
	if err != nil {
		err = errors.Errorf("error while decoding bech32 encoded Address (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	decodedBytes, err := bech32.ConvertBits(fiveBitWords, 5, 8, false)
	if err != nil {
		err = errors.Errorf("error while regrouping bech32 data (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	if address, _, err = AddressFromBytes(decodedBytes); err != nil {
		err = errors.Errorf("failed to parse Address from bytes: %w", err)
		return
	}

	return
}

// AddressFromMarshalUtil unmarshals an Address using a MarshalUtil (for easier unmarshaling).
func AddressFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (address Address, err error) {
	version, err := marshalUtil.ReadByte()
	if err != nil {
		err = errors.Errorf("failed to parse Address version (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}
	if version != AddressVersion {
		err = errors.Errorf("invalid Address version (%X): %w", version, cerrors.ErrParseBytesFailed)
		return
	}

	if address.digest, err = marshalUtil.ReadBytes(AddressDigestLength); err != nil {
		err = errors.Errorf("error parsing Address digest (%v): %w", err, cerrors.ErrParseBytesFailed)
		return
	}

	return
}

// Digest returns the hashed version of the Addresses public key.
func (a Address) Digest() []byte {
	return a.digest
}

// Equals returns true if the two Addresses are equal.
func (a Address) Equals(other Address) bool {
	return bytes.Equal(a.digest, other.digest)
}

// Bytes returns a marshaled version of the Address.
func (a Address) Bytes() []byte {
	return marshalutil.New(AddressLength).
		WriteByte(AddressVersion).
		WriteBytes(a.digest).
		Bytes()
}

// Array returns an array of bytes that contains the marshaled version of the Address.
func (a Address) Array() (array [AddressLength]byte) {
	copy(array[:], a.Bytes())

	return
}

// Base58 returns a base58 encoded version of the Address.
func (a Address) Base58() string {
	return base58.Encode(a.Bytes())
}

// Bech32 returns a bech32 encoded version of the Address using the given human-readable part.
func (a Address) Bech32(hrp string) string {
	fiveBitWords, err := bech32.ConvertBits(a.Bytes(), 8, 5, true)
	if err != nil {
		panic(err)
	}
	encoded, err := bech32.Encode(hrp, fiveBitWords)
	if err != nil {
		panic(err)
	}

	return encoded
}

// String returns a human readable version of the Address for debug purposes.
func (a Address) String() string {
	return stringify.Struct("Address",
		stringify.StructField("digest", a.digest),
		stringify.StructField("base58", a.Base58()),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
