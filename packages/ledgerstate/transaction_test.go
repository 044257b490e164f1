package ledgerstate

import (
	"testing"
	"time"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Bytes(t *testing.T) {
	keyPair := ed25519.GenerateKeyPair()
	recipient := randomAddress()

	inputs := Inputs{
		NewOutputID(randomTransactionID(t), 0),
		NewOutputID(randomTransactionID(t), 1),
	}
	outputs := Outputs{
		NewBasicOutput(5000000, NewAddressUnlockCondition(recipient)),
	}
	essence := NewTransactionEssence(0, inputs, outputs)

	signature := keyPair.PrivateKey.Sign(essence.Bytes())
	unlockBlocks := UnlockBlocks{
		NewSignatureUnlockBlock(keyPair.PublicKey, signature),
		NewReferenceUnlockBlock(0),
	}
	transaction := NewTransaction(essence, unlockBlocks)

	restored, consumedBytes, err := TransactionFromBytes(transaction.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(transaction.Bytes()), consumedBytes)
	assert.Equal(t, transaction.ID(), restored.ID())
	assert.Equal(t, inputs, restored.Essence().Inputs())
	assert.Equal(t, uint64(5000000), restored.Essence().Outputs()[0].Amount())
}

func TestTransactionFromBytes_UnlockBlockCountMismatch(t *testing.T) {
	keyPair := ed25519.GenerateKeyPair()

	inputs := Inputs{
		NewOutputID(randomTransactionID(t), 0),
		NewOutputID(randomTransactionID(t), 1),
	}
	essence := NewTransactionEssence(0, inputs, Outputs{
		NewBasicOutput(1, NewAddressUnlockCondition(randomAddress())),
	})
	transaction := NewTransaction(essence, UnlockBlocks{
		NewSignatureUnlockBlock(keyPair.PublicKey, keyPair.PrivateKey.Sign(essence.Bytes())),
	})

	_, _, err := TransactionFromBytes(transaction.Bytes())
	assert.Error(t, err)
}

func TestSignatureUnlockBlock_AddressSignatureValid(t *testing.T) {
	keyPair := ed25519.GenerateKeyPair()
	address := NewAddress(keyPair.PublicKey)

	essence := NewTransactionEssence(0, Inputs{NewOutputID(randomTransactionID(t), 0)}, Outputs{
		NewBasicOutput(1000000, NewAddressUnlockCondition(randomAddress()), NewTimelockUnlockCondition(time.Unix(1700000000, 0))),
	})

	unlockBlock := NewSignatureUnlockBlock(keyPair.PublicKey, keyPair.PrivateKey.Sign(essence.Bytes()))
	assert.True(t, unlockBlock.AddressSignatureValid(address, essence.Bytes()))
	assert.False(t, unlockBlock.AddressSignatureValid(randomAddress(), essence.Bytes()))
	assert.False(t, unlockBlock.AddressSignatureValid(address, []byte("some other data")))
}

func TestTransactionIDFromBase58(t *testing.T) {
	transactionID := randomTransactionID(t)

	restored, err := TransactionIDFromBase58(transactionID.Base58())
	require.NoError(t, err)
	assert.Equal(t, transactionID, restored)
}

func randomTransactionID(t *testing.T) (transactionID TransactionID) {
	keyPair := ed25519.GenerateKeyPair()
	copy(transactionID[:], keyPair.PublicKey[:])

	return
}
