package ledgerstate

import (
	"testing"
	"time"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockConditions_Timelock(t *testing.T) {
	referenceTime := time.Unix(1700000000, 0)

	conditions := UnlockConditions{
		NewAddressUnlockCondition(randomAddress()),
		NewTimelockUnlockCondition(referenceTime.Add(time.Hour)),
	}

	assert.True(t, conditions.IsTimeLockedAt(referenceTime))
	assert.False(t, conditions.IsTimeLockedAt(referenceTime.Add(2*time.Hour)))

	// the boundary belongs to the unlocked side
	assert.False(t, conditions.IsTimeLockedAt(referenceTime.Add(time.Hour)))
}

func TestUnlockConditions_Expiration(t *testing.T) {
	referenceTime := time.Unix(1700000000, 0)

	conditions := UnlockConditions{
		NewAddressUnlockCondition(randomAddress()),
		NewExpirationUnlockCondition(randomAddress(), referenceTime.Add(time.Hour)),
	}

	assert.False(t, conditions.IsExpiredAt(referenceTime))
	assert.True(t, conditions.IsExpiredAt(referenceTime.Add(2*time.Hour)))

	// the boundary belongs to the expired side
	assert.True(t, conditions.IsExpiredAt(referenceTime.Add(time.Hour)))
}

func TestUnlockConditions_WithoutTimeConstraints(t *testing.T) {
	conditions := UnlockConditions{
		NewAddressUnlockCondition(randomAddress()),
	}

	now := time.Now()
	assert.False(t, conditions.IsTimeLockedAt(now))
	assert.False(t, conditions.IsExpiredAt(now))
	assert.False(t, conditions.HasStorageDepositReturn())
	assert.Nil(t, conditions.Timelock())
	assert.Nil(t, conditions.Expiration())
	assert.Nil(t, conditions.StorageDepositReturn())
}

func TestUnlockConditions_StorageDepositReturn(t *testing.T) {
	depositor := randomAddress()
	conditions := UnlockConditions{
		NewAddressUnlockCondition(randomAddress()),
		NewStorageDepositReturnUnlockCondition(depositor, 500000),
	}

	require.True(t, conditions.HasStorageDepositReturn())
	assert.Equal(t, uint64(500000), conditions.StorageDepositReturn().Amount())
	assert.True(t, depositor.Equals(conditions.StorageDepositReturn().ReturnAddress()))
}

func TestBasicOutput_Bytes(t *testing.T) {
	owner := randomAddress()
	depositor := randomAddress()
	output := NewBasicOutput(1337,
		NewAddressUnlockCondition(owner),
		NewTimelockUnlockCondition(time.Unix(1700000000, 0)),
		NewExpirationUnlockCondition(depositor, time.Unix(1800000000, 0)),
		NewStorageDepositReturnUnlockCondition(depositor, 42),
	)

	restored, consumedBytes, err := BasicOutputFromBytes(output.Bytes())
	require.NoError(t, err)
	assert.Equal(t, len(output.Bytes()), consumedBytes)
	assert.Equal(t, output.Amount(), restored.Amount())
	assert.Equal(t, len(output.UnlockConditions()), len(restored.UnlockConditions()))
	assert.True(t, restored.UnlockConditions().IsTimeLockedAt(time.Unix(1600000000, 0)))
	assert.Equal(t, uint64(42), restored.UnlockConditions().StorageDepositReturn().Amount())

	restoredOwner, err := restored.Address()
	require.NoError(t, err)
	assert.True(t, owner.Equals(restoredOwner))
}

func TestOutputID(t *testing.T) {
	transaction := NewTransaction(NewTransactionEssence(0, Inputs{}, Outputs{}), UnlockBlocks{})
	outputID := NewOutputID(transaction.ID(), 3)

	assert.Equal(t, transaction.ID(), outputID.TransactionID())
	assert.Equal(t, uint16(3), outputID.OutputIndex())

	restored, err := OutputIDFromBase58(outputID.Base58())
	require.NoError(t, err)
	assert.Equal(t, outputID, restored)
}

func randomAddress() Address {
	return NewAddress(ed25519.GenerateKeyPair().PublicKey)
}
