package wallet

import (
	"time"

	"github.com/iotaledger/funds-tools/packages/ledgerstate"
)

// region Connector ////////////////////////////////////////////////////////////////////////////////////////////////////

// Connector represents an interface that defines how the wallet interacts with the network. A wallet can either be used
// locally on a server or it can connect remotely using the web API.
type Connector interface {
	ServerStatus() (status ServerStatus, err error)
	UnspentOutputs(address ledgerstate.Address, filters ...OutputFilter) (outputs Outputs, err error)
	SendTransaction(transaction *ledgerstate.Transaction) (err error)
	TransactionConfirmed(transactionID ledgerstate.TransactionID) (confirmed bool, err error)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region OutputFilter /////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// FilterExpiration excludes outputs that carry an expiration unlock condition.
	FilterExpiration OutputFilter = iota

	// FilterStorageDepositReturn excludes outputs that carry a storage deposit return unlock condition.
	FilterStorageDepositReturn
)

// OutputFilter narrows down which outputs a Connector returns for an address.
type OutputFilter byte

// String returns a human readable representation of the OutputFilter.
func (o OutputFilter) String() string {
	return [...]string{
		"FilterExpiration",
		"FilterStorageDepositReturn",
	}[o]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ServerStatus /////////////////////////////////////////////////////////////////////////////////////////////////

// ServerStatus is a container for the parameters of the node that the wallet is connected to.
type ServerStatus struct {
	Version         string
	Synced          bool
	Bech32HRP       string
	TokenSupply     uint64
	MinOutputAmount uint64
	LedgerTime      time.Time
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
