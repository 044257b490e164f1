package jsonmodels

import (
	"testing"
	"time"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/funds-tools/packages/ledgerstate"
)

func TestOutput_RoundTrip(t *testing.T) {
	addr := ledgerstate.NewAddress(ed25519.GenerateKeyPair().PublicKey)
	returnAddr := ledgerstate.NewAddress(ed25519.GenerateKeyPair().PublicKey)

	original := ledgerstate.NewBasicOutput(1337,
		ledgerstate.NewAddressUnlockCondition(addr),
		ledgerstate.NewTimelockUnlockCondition(time.Unix(1700000000, 0)),
		ledgerstate.NewExpirationUnlockCondition(returnAddr, time.Unix(1800000000, 0)),
		ledgerstate.NewStorageDepositReturnUnlockCondition(returnAddr, 42),
	)
	outputID := ledgerstate.NewOutputID(ledgerstate.TransactionID{1, 2, 3}, 7)

	jsonOutput := NewOutput(outputID, original)
	require.Len(t, jsonOutput.UnlockConditions, 4)
	assert.Equal(t, outputID.Base58(), jsonOutput.OutputID.Base58)
	assert.EqualValues(t, 7, jsonOutput.OutputID.OutputIndex)

	restored, err := jsonOutput.ToLedgerstateOutput()
	require.NoError(t, err)

	assert.Equal(t, original.Bytes(), restored.Bytes())
	assert.Equal(t, time.Unix(1700000000, 0).Unix(), restored.UnlockConditions().Timelock().Timelock().Unix())
}

func TestUnlockCondition_UnknownType(t *testing.T) {
	jsonUnlockCondition := &UnlockCondition{Type: "SomethingElse"}

	_, err := jsonUnlockCondition.ToLedgerstateUnlockCondition()
	require.Error(t, err)
}
