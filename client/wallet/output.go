package wallet

import (
	"time"

	"github.com/iotaledger/hive.go/stringify"

	"github.com/iotaledger/funds-tools/packages/ledgerstate"
)

// region Output ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Output is a wallet specific representation of an output on the ledger.
type Output struct {
	Address  ledgerstate.Address
	OutputID ledgerstate.OutputID
	Object   *ledgerstate.BasicOutput
	Metadata OutputMetadata
}

// String returns a human readable version of the Output.
func (o *Output) String() string {
	return stringify.Struct("Output",
		stringify.StructField("Address", o.Address),
		stringify.StructField("OutputID", o.OutputID),
		stringify.StructField("Object", o.Object),
		stringify.StructField("Metadata", o.Metadata),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region OutputMetadata ///////////////////////////////////////////////////////////////////////////////////////////////

// OutputMetadata is the ledger metadata of an Output.
type OutputMetadata struct {
	// Spent marks whether the output was already consumed by a transaction.
	Spent bool

	// Booked is the timestamp of the transaction that created the output.
	Booked time.Time
}

// String returns a human readable version of the OutputMetadata.
func (o OutputMetadata) String() string {
	return stringify.Struct("OutputMetadata",
		stringify.StructField("Spent", o.Spent),
		stringify.StructField("Booked", o.Booked),
	)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Outputs //////////////////////////////////////////////////////////////////////////////////////////////////////

// Outputs represents a collection of Outputs.
type Outputs []*Output

// TotalAmount returns the sum of the amounts of all Outputs in the collection.
func (o Outputs) TotalAmount() (totalAmount uint64) {
	for _, output := range o {
		totalAmount += output.Object.Amount()
	}

	return
}

// OutputIDs returns the identifiers of all Outputs in the collection.
func (o Outputs) OutputIDs() (outputIDs []ledgerstate.OutputID) {
	outputIDs = make([]ledgerstate.OutputID, len(o))
	for i, output := range o {
		outputIDs[i] = output.OutputID
	}

	return
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
