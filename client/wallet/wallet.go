package wallet

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/funds-tools/client/wallet/packages/keys"
	"github.com/iotaledger/funds-tools/packages/ledgerstate"
)

// region Wallet ///////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// DefaultPollingInterval is the polling interval of the wallet when waiting for confirmation (in ms).
	DefaultPollingInterval = 500 * time.Millisecond
	// DefaultConfirmationTimeout is the timeout of waiting for confirmation. (in ms).
	DefaultConfirmationTimeout = 150000 * time.Millisecond
)

var (
	// ErrAmountBelowMinimum is returned when a transaction would create an output whose amount is below the protocol
	// wide minimum.
	ErrAmountBelowMinimum = errors.New("amount is below the minimum output amount")

	// ErrAmountExceedsSupply is returned when a transaction would create an output whose amount exceeds the total token
	// supply of the network.
	ErrAmountExceedsSupply = errors.New("amount exceeds the total token supply")

	// ErrConfirmationTimeout is returned when a transaction is not confirmed within the configured timeout.
	ErrConfirmationTimeout = errors.New("transaction was not confirmed in time")
)

// Wallet reads and consolidates the funds that are controlled by individual private keys.
type Wallet struct {
	connector Connector

	serverStatus        ServerStatus
	serverStatusFetched bool

	ConfirmationPollInterval time.Duration
	ConfirmationTimeout      time.Duration
}

// New is the factory method of the wallet.
func New(options ...Option) (wallet *Wallet) {
	// create wallet
	wallet = &Wallet{}

	// configure wallet
	for _, option := range options {
		option(wallet)
	}

	if wallet.ConfirmationPollInterval == 0 {
		wallet.ConfirmationPollInterval = DefaultPollingInterval
	}

	if wallet.ConfirmationTimeout == 0 {
		wallet.ConfirmationTimeout = DefaultConfirmationTimeout
	}

	if wallet.connector == nil {
		panic("you need to provide a connector for your wallet")
	}

	return
}

// Refresh fetches the parameters of the connected node. The ledger time that is sampled here acts as the reference
// time for all of the wallets eligibility decisions until Refresh is called again.
func (wallet *Wallet) Refresh() (err error) {
	status, err := wallet.connector.ServerStatus()
	if err != nil {
		return errors.Errorf("failed to fetch server status: %w", err)
	}

	wallet.serverStatus = status
	wallet.serverStatusFetched = true

	return
}

// ServerStatus returns the parameters of the connected node.
func (wallet *Wallet) ServerStatus() (status ServerStatus, err error) {
	if err = wallet.ensureServerStatus(); err != nil {
		return
	}

	return wallet.serverStatus, nil
}

// ReferenceTime returns the ledger time that was sampled when the wallet last refreshed.
func (wallet *Wallet) ReferenceTime() (referenceTime time.Time, err error) {
	if err = wallet.ensureServerStatus(); err != nil {
		return
	}

	return wallet.serverStatus.LedgerTime, nil
}

// Bech32HRP returns the human readable part that the connected network uses for bech32 encoded addresses.
func (wallet *Wallet) Bech32HRP() (hrp string, err error) {
	if err = wallet.ensureServerStatus(); err != nil {
		return
	}

	return wallet.serverStatus.Bech32HRP, nil
}

// SpendableOutputs returns the outputs on the given address that can be spent right now: they are unspent, carry a
// non-zero amount, are not timelocked and have not expired at the reference time. Outputs that demand a storage deposit
// return are filtered out at the node.
func (wallet *Wallet) SpendableOutputs(addr ledgerstate.Address) (outputs Outputs, err error) {
	if err = wallet.ensureServerStatus(); err != nil {
		return
	}

	unspentOutputs, err := wallet.connector.UnspentOutputs(addr, FilterStorageDepositReturn)
	if err != nil {
		err = errors.Errorf("failed to fetch unspent outputs: %w", err)
		return
	}

	referenceTime := wallet.serverStatus.LedgerTime
	outputs = make(Outputs, 0, len(unspentOutputs))
	for _, output := range unspentOutputs {
		if output.Metadata.Spent || output.Object.Amount() == 0 {
			continue
		}
		if output.Object.UnlockConditions().IsTimeLockedAt(referenceTime) {
			continue
		}
		if output.Object.UnlockConditions().IsExpiredAt(referenceTime) {
			continue
		}

		outputs = append(outputs, output)
	}

	return
}

// TimedBalanceOutputs returns the outputs on the given address that count towards the timed balances: they are unspent
// and carry a non-zero amount. Outputs with an expiration or a storage deposit return are filtered out at the node.
func (wallet *Wallet) TimedBalanceOutputs(addr ledgerstate.Address) (outputs Outputs, err error) {
	unspentOutputs, err := wallet.connector.UnspentOutputs(addr, FilterExpiration, FilterStorageDepositReturn)
	if err != nil {
		err = errors.Errorf("failed to fetch unspent outputs: %w", err)
		return
	}

	outputs = make(Outputs, 0, len(unspentOutputs))
	for _, output := range unspentOutputs {
		if output.Metadata.Spent || output.Object.Amount() == 0 {
			continue
		}

		outputs = append(outputs, output)
	}

	return
}

// NewConsolidation creates a transaction that consumes all of the given outputs and sends their combined funds to the
// recipient address in a single new output signed by the given key.
func (wallet *Wallet) NewConsolidation(outputs Outputs, recipient ledgerstate.Address, key *keys.Key) (tx *ledgerstate.Transaction, err error) {
	if err = wallet.ensureServerStatus(); err != nil {
		return
	}

	if len(outputs) == 0 {
		err = errors.New("can not consolidate an empty set of outputs")
		return
	}

	totalAmount := outputs.TotalAmount()
	if totalAmount < wallet.serverStatus.MinOutputAmount {
		err = errors.Errorf("can not consolidate %d tokens: %w", totalAmount, ErrAmountBelowMinimum)
		return
	}
	if wallet.serverStatus.TokenSupply != 0 && totalAmount > wallet.serverStatus.TokenSupply {
		err = errors.Errorf("can not consolidate %d tokens: %w", totalAmount, ErrAmountExceedsSupply)
		return
	}

	essence := ledgerstate.NewTransactionEssence(0,
		ledgerstate.Inputs(outputs.OutputIDs()),
		ledgerstate.Outputs{
			ledgerstate.NewBasicOutput(totalAmount, ledgerstate.NewAddressUnlockCondition(recipient)),
		},
	)

	// the inputs all belong to the same address, so the first unlock block signs and the others reference it
	unlockBlocks := make(ledgerstate.UnlockBlocks, len(outputs))
	unlockBlocks[0] = ledgerstate.NewSignatureUnlockBlock(key.PublicKey(), key.Sign(essence.Bytes()))
	for i := 1; i < len(outputs); i++ {
		unlockBlocks[i] = ledgerstate.NewReferenceUnlockBlock(0)
	}

	return ledgerstate.NewTransaction(essence, unlockBlocks), nil
}

// SendTransaction sends the given transaction to the network.
func (wallet *Wallet) SendTransaction(tx *ledgerstate.Transaction) (err error) {
	return wallet.connector.SendTransaction(tx)
}

// AwaitConfirmation polls the network until the transaction with the given ID is confirmed or the configured timeout is
// exceeded.
func (wallet *Wallet) AwaitConfirmation(transactionID ledgerstate.TransactionID) (err error) {
	timeoutCounter := time.Duration(0)
	for {
		time.Sleep(wallet.ConfirmationPollInterval)
		timeoutCounter += wallet.ConfirmationPollInterval

		confirmed, fetchErr := wallet.connector.TransactionConfirmed(transactionID)
		if fetchErr != nil {
			return fetchErr
		}
		if confirmed {
			return
		}
		if timeoutCounter > wallet.ConfirmationTimeout {
			return errors.Errorf("transaction %s did not confirm within %d seconds: %w", transactionID.Base58(),
				wallet.ConfirmationTimeout/time.Second, ErrConfirmationTimeout)
		}
	}
}

func (wallet *Wallet) ensureServerStatus() (err error) {
	if wallet.serverStatusFetched {
		return
	}

	return wallet.Refresh()
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Options //////////////////////////////////////////////////////////////////////////////////////////////////////

// Option represents an optional parameter for the wallet.
type Option func(*Wallet)

// WithConnector is an option that allows to change the connector that the wallet uses to talk to the network.
func WithConnector(connector Connector) Option {
	return func(wallet *Wallet) {
		wallet.connector = connector
	}
}

// WithConfirmationPollInterval is an option that changes how often the wallet polls for transaction confirmation.
func WithConfirmationPollInterval(pollInterval time.Duration) Option {
	return func(wallet *Wallet) {
		wallet.ConfirmationPollInterval = pollInterval
	}
}

// WithConfirmationTimeout is an option that changes how long the wallet waits for transaction confirmation.
func WithConfirmationTimeout(timeout time.Duration) Option {
	return func(wallet *Wallet) {
		wallet.ConfirmationTimeout = timeout
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
