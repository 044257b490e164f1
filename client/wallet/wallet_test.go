package wallet

import (
	"crypto/rand"
	"testing"
	"time"

	"github.com/iotaledger/hive.go/crypto/ed25519"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/funds-tools/client/wallet/packages/keys"
	"github.com/iotaledger/funds-tools/packages/ledgerstate"
)

// stubConnector implements the Connector interface against a fixed set of outputs.
type stubConnector struct {
	status             ServerStatus
	outputs            map[string]Outputs
	sentTransactions   []*ledgerstate.Transaction
	confirmAfterPolls  int
	transactionPolls   int
	statusErr          error
	unspentOutputsErr  error
	sendTransactionErr error
}

func newStubConnector() *stubConnector {
	return &stubConnector{
		status: ServerStatus{
			Version:         "v0.9.1",
			Synced:          true,
			Bech32HRP:       "iota",
			TokenSupply:     2779530283277761,
			MinOutputAmount: 1000000,
			LedgerTime:      time.Unix(1695000000, 0),
		},
		outputs: make(map[string]Outputs),
	}
}

func (s *stubConnector) ServerStatus() (ServerStatus, error) {
	return s.status, s.statusErr
}

func (s *stubConnector) UnspentOutputs(addr ledgerstate.Address, filters ...OutputFilter) (Outputs, error) {
	if s.unspentOutputsErr != nil {
		return nil, s.unspentOutputsErr
	}

	filtered := make(Outputs, 0)
	for _, output := range s.outputs[addr.Base58()] {
		excluded := false
		for _, filter := range filters {
			switch filter {
			case FilterExpiration:
				excluded = excluded || output.Object.UnlockConditions().Expiration() != nil
			case FilterStorageDepositReturn:
				excluded = excluded || output.Object.UnlockConditions().HasStorageDepositReturn()
			}
		}
		if !excluded {
			filtered = append(filtered, output)
		}
	}

	return filtered, nil
}

func (s *stubConnector) SendTransaction(tx *ledgerstate.Transaction) error {
	if s.sendTransactionErr != nil {
		return s.sendTransactionErr
	}
	s.sentTransactions = append(s.sentTransactions, tx)

	return nil
}

func (s *stubConnector) TransactionConfirmed(transactionID ledgerstate.TransactionID) (bool, error) {
	s.transactionPolls++

	return s.transactionPolls >= s.confirmAfterPolls, nil
}

var _ Connector = &stubConnector{}

func (s *stubConnector) addOutput(t *testing.T, addr ledgerstate.Address, amount uint64, booked time.Time, extraConditions ...ledgerstate.UnlockCondition) *Output {
	t.Helper()

	conditions := append(ledgerstate.UnlockConditions{ledgerstate.NewAddressUnlockCondition(addr)}, extraConditions...)
	transactionID := ledgerstate.TransactionID{byte(len(s.outputs[addr.Base58()]) + 1)}

	output := &Output{
		Address:  addr,
		OutputID: ledgerstate.NewOutputID(transactionID, 0),
		Object:   ledgerstate.NewBasicOutput(amount, conditions...),
		Metadata: OutputMetadata{Booked: booked},
	}
	s.outputs[addr.Base58()] = append(s.outputs[addr.Base58()], output)

	return output
}

func TestWallet_SpendableOutputs(t *testing.T) {
	connector := newStubConnector()
	testWallet := New(WithConnector(connector))

	keyPair := ed25519.GenerateKeyPair()
	addr := ledgerstate.NewAddress(keyPair.PublicKey)
	referenceTime := connector.status.LedgerTime
	booked := referenceTime.Add(-24 * time.Hour)

	spendable := connector.addOutput(t, addr, 3000000, booked)
	connector.addOutput(t, addr, 2000000, booked,
		ledgerstate.NewTimelockUnlockCondition(referenceTime.Add(time.Hour)))
	connector.addOutput(t, addr, 1000000, booked,
		ledgerstate.NewExpirationUnlockCondition(randomAddress(), referenceTime.Add(-time.Hour)))
	connector.addOutput(t, addr, 0, booked)

	// a timelock that has already elapsed does not block spending
	elapsed := connector.addOutput(t, addr, 5000000, booked,
		ledgerstate.NewTimelockUnlockCondition(referenceTime.Add(-time.Minute)))

	outputs, err := testWallet.SpendableOutputs(addr)
	require.NoError(t, err)

	require.Len(t, outputs, 2)
	assert.Equal(t, spendable.OutputID, outputs[0].OutputID)
	assert.Equal(t, elapsed.OutputID, outputs[1].OutputID)
	assert.EqualValues(t, 8000000, outputs.TotalAmount())
}

func TestWallet_SpendableOutputs_TimelockBoundary(t *testing.T) {
	connector := newStubConnector()
	testWallet := New(WithConnector(connector))

	keyPair := ed25519.GenerateKeyPair()
	addr := ledgerstate.NewAddress(keyPair.PublicKey)
	referenceTime := connector.status.LedgerTime

	// a timelock equal to the reference time no longer locks the output
	connector.addOutput(t, addr, 1000000, referenceTime.Add(-time.Hour),
		ledgerstate.NewTimelockUnlockCondition(referenceTime))

	outputs, err := testWallet.SpendableOutputs(addr)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
}

func TestWallet_SpendableOutputs_ExpirationBoundary(t *testing.T) {
	connector := newStubConnector()
	testWallet := New(WithConnector(connector))

	keyPair := ed25519.GenerateKeyPair()
	addr := ledgerstate.NewAddress(keyPair.PublicKey)
	referenceTime := connector.status.LedgerTime

	// an expiration equal to the reference time already expires the output
	connector.addOutput(t, addr, 1000000, referenceTime.Add(-time.Hour),
		ledgerstate.NewExpirationUnlockCondition(randomAddress(), referenceTime))

	outputs, err := testWallet.SpendableOutputs(addr)
	require.NoError(t, err)
	require.Len(t, outputs, 0)
}

func TestWallet_TimedBalanceOutputs(t *testing.T) {
	connector := newStubConnector()
	testWallet := New(WithConnector(connector))

	keyPair := ed25519.GenerateKeyPair()
	addr := ledgerstate.NewAddress(keyPair.PublicKey)
	booked := time.Unix(1690000000, 0)

	connector.addOutput(t, addr, 3000000, booked)
	connector.addOutput(t, addr, 2000000, booked,
		ledgerstate.NewTimelockUnlockCondition(time.Unix(1700000000, 0)))
	connector.addOutput(t, addr, 0, booked)
	connector.addOutput(t, addr, 7000000, booked,
		ledgerstate.NewExpirationUnlockCondition(randomAddress(), time.Unix(1800000000, 0)))

	outputs, err := testWallet.TimedBalanceOutputs(addr)
	require.NoError(t, err)

	// the expired and the empty outputs are not part of the timed balances
	require.Len(t, outputs, 2)
	assert.EqualValues(t, 5000000, outputs.TotalAmount())
}

func TestWallet_NewConsolidation(t *testing.T) {
	connector := newStubConnector()
	testWallet := New(WithConnector(connector))

	key, err := keys.KeyFromBase58EncodedString(randomSeedBase58())
	require.NoError(t, err)
	addr := key.Address()
	recipient := randomAddress()

	booked := connector.status.LedgerTime.Add(-24 * time.Hour)
	connector.addOutput(t, addr, 3000000, booked)
	connector.addOutput(t, addr, 2000000, booked)

	outputs, err := testWallet.SpendableOutputs(addr)
	require.NoError(t, err)

	tx, err := testWallet.NewConsolidation(outputs, recipient, key)
	require.NoError(t, err)

	require.Len(t, tx.Essence().Inputs(), 2)
	require.Len(t, tx.Essence().Outputs(), 1)
	assert.EqualValues(t, 5000000, tx.Essence().Outputs()[0].Amount())

	recipientOfTx, err := tx.Essence().Outputs()[0].Address()
	require.NoError(t, err)
	assert.True(t, recipientOfTx.Equals(recipient))

	signatureUnlockBlock, ok := tx.UnlockBlocks()[0].(*ledgerstate.SignatureUnlockBlock)
	require.True(t, ok)
	assert.True(t, signatureUnlockBlock.AddressSignatureValid(addr, tx.Essence().Bytes()))

	referenceUnlockBlock, ok := tx.UnlockBlocks()[1].(*ledgerstate.ReferenceUnlockBlock)
	require.True(t, ok)
	assert.EqualValues(t, 0, referenceUnlockBlock.ReferencedIndex())
}

func TestWallet_NewConsolidation_BelowMinimum(t *testing.T) {
	connector := newStubConnector()
	testWallet := New(WithConnector(connector))

	key, err := keys.KeyFromBase58EncodedString(randomSeedBase58())
	require.NoError(t, err)

	connector.addOutput(t, key.Address(), 1000, connector.status.LedgerTime.Add(-time.Hour))

	outputs, err := testWallet.SpendableOutputs(key.Address())
	require.NoError(t, err)

	_, err = testWallet.NewConsolidation(outputs, randomAddress(), key)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmountBelowMinimum)
}

func TestWallet_NewConsolidation_NoOutputs(t *testing.T) {
	connector := newStubConnector()
	connector.status.MinOutputAmount = 0
	testWallet := New(WithConnector(connector))

	key, err := keys.KeyFromBase58EncodedString(randomSeedBase58())
	require.NoError(t, err)

	_, err = testWallet.NewConsolidation(Outputs{}, randomAddress(), key)
	require.Error(t, err)
}

func TestWallet_AwaitConfirmation(t *testing.T) {
	connector := newStubConnector()
	connector.confirmAfterPolls = 3
	testWallet := New(
		WithConnector(connector),
		WithConfirmationPollInterval(time.Millisecond),
		WithConfirmationTimeout(100*time.Millisecond),
	)

	err := testWallet.AwaitConfirmation(ledgerstate.TransactionID{1})
	require.NoError(t, err)
	assert.Equal(t, 3, connector.transactionPolls)
}

func TestWallet_AwaitConfirmation_Timeout(t *testing.T) {
	connector := newStubConnector()
	connector.confirmAfterPolls = 1000000
	testWallet := New(
		WithConnector(connector),
		WithConfirmationPollInterval(time.Millisecond),
		WithConfirmationTimeout(10*time.Millisecond),
	)

	err := testWallet.AwaitConfirmation(ledgerstate.TransactionID{1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfirmationTimeout)
}

func randomAddress() ledgerstate.Address {
	return ledgerstate.NewAddress(ed25519.GenerateKeyPair().PublicKey)
}

func randomSeedBase58() string {
	seedBytes := make([]byte, ed25519.SeedSize)
	_, _ = rand.Read(seedBytes)

	return base58.Encode(seedBytes)
}
