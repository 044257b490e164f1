package jsonmodels

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/funds-tools/packages/ledgerstate"
)

// region Address //////////////////////////////////////////////////////////////////////////////////////////////////////

// Address represents the JSON model of a ledgerstate.Address.
type Address struct {
	Base58 string `json:"base58"`
	Bech32 string `json:"bech32"`
}

// NewAddress returns an Address from the given ledgerstate.Address.
func NewAddress(address ledgerstate.Address, hrp string) *Address {
	return &Address{
		Base58: address.Base58(),
		Bech32: address.Bech32(hrp),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Output ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Output represents the JSON model of a ledgerstate.BasicOutput.
type Output struct {
	OutputID         *OutputID          `json:"outputID,omitempty"`
	Amount           uint64             `json:"amount"`
	UnlockConditions []*UnlockCondition `json:"unlockConditions"`
}

// NewOutput returns an Output from the given ledgerstate.BasicOutput.
func NewOutput(id ledgerstate.OutputID, output *ledgerstate.BasicOutput) *Output {
	unlockConditions := make([]*UnlockCondition, 0, len(output.UnlockConditions()))
	for _, unlockCondition := range output.UnlockConditions() {
		unlockConditions = append(unlockConditions, NewUnlockCondition(unlockCondition))
	}

	return &Output{
		OutputID:         NewOutputID(id),
		Amount:           output.Amount(),
		UnlockConditions: unlockConditions,
	}
}

// ToLedgerstateOutput converts the JSON output object into its ledgerstate representation.
func (o *Output) ToLedgerstateOutput() (output *ledgerstate.BasicOutput, err error) {
	unlockConditions := make(ledgerstate.UnlockConditions, 0, len(o.UnlockConditions))
	for _, unlockCondition := range o.UnlockConditions {
		parsedUnlockCondition, cErr := unlockCondition.ToLedgerstateUnlockCondition()
		if cErr != nil {
			err = errors.Errorf("failed to parse UnlockCondition: %w", cErr)
			return
		}
		unlockConditions = append(unlockConditions, parsedUnlockCondition)
	}

	return ledgerstate.NewBasicOutput(o.Amount, unlockConditions...), nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region UnlockCondition //////////////////////////////////////////////////////////////////////////////////////////////

// UnlockCondition represents the JSON model of a ledgerstate.UnlockCondition.
type UnlockCondition struct {
	Type          string `json:"type"`
	Address       string `json:"address,omitempty"`
	Timelock      int64  `json:"timelock,omitempty"`
	ReturnAddress string `json:"returnAddress,omitempty"`
	Expiration    int64  `json:"expiration,omitempty"`
	Amount        uint64 `json:"amount,omitempty"`
}

// NewUnlockCondition returns an UnlockCondition from the given ledgerstate.UnlockCondition.
func NewUnlockCondition(unlockCondition ledgerstate.UnlockCondition) *UnlockCondition {
	result := &UnlockCondition{
		Type: unlockCondition.Type().String(),
	}

	switch typedUnlockCondition := unlockCondition.(type) {
	case *ledgerstate.AddressUnlockCondition:
		result.Address = typedUnlockCondition.Address().Base58()
	case *ledgerstate.TimelockUnlockCondition:
		result.Timelock = typedUnlockCondition.Timelock().Unix()
	case *ledgerstate.ExpirationUnlockCondition:
		result.ReturnAddress = typedUnlockCondition.ReturnAddress().Base58()
		result.Expiration = typedUnlockCondition.Expiration().Unix()
	case *ledgerstate.StorageDepositReturnUnlockCondition:
		result.ReturnAddress = typedUnlockCondition.ReturnAddress().Base58()
		result.Amount = typedUnlockCondition.Amount()
	}

	return result
}

// ToLedgerstateUnlockCondition converts the JSON unlock condition into its ledgerstate representation.
func (u *UnlockCondition) ToLedgerstateUnlockCondition() (unlockCondition ledgerstate.UnlockCondition, err error) {
	unlockConditionType, err := ledgerstate.UnlockConditionTypeFromString(u.Type)
	if err != nil {
		err = errors.Errorf("failed to parse UnlockConditionType: %w", err)
		return
	}

	switch unlockConditionType {
	case ledgerstate.AddressUnlockConditionType:
		address, aErr := ledgerstate.AddressFromBase58EncodedString(u.Address)
		if aErr != nil {
			err = errors.Errorf("failed to parse Address: %w", aErr)
			return
		}
		unlockCondition = ledgerstate.NewAddressUnlockCondition(address)
	case ledgerstate.TimelockUnlockConditionType:
		unlockCondition = ledgerstate.NewTimelockUnlockCondition(time.Unix(u.Timelock, 0))
	case ledgerstate.ExpirationUnlockConditionType:
		returnAddress, aErr := ledgerstate.AddressFromBase58EncodedString(u.ReturnAddress)
		if aErr != nil {
			err = errors.Errorf("failed to parse ReturnAddress: %w", aErr)
			return
		}
		unlockCondition = ledgerstate.NewExpirationUnlockCondition(returnAddress, time.Unix(u.Expiration, 0))
	case ledgerstate.StorageDepositReturnUnlockConditionType:
		returnAddress, aErr := ledgerstate.AddressFromBase58EncodedString(u.ReturnAddress)
		if aErr != nil {
			err = errors.Errorf("failed to parse ReturnAddress: %w", aErr)
			return
		}
		unlockCondition = ledgerstate.NewStorageDepositReturnUnlockCondition(returnAddress, u.Amount)
	}

	return unlockCondition, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region OutputID /////////////////////////////////////////////////////////////////////////////////////////////////////

// OutputID represents the JSON model of a ledgerstate.OutputID.
type OutputID struct {
	Base58        string `json:"base58"`
	TransactionID string `json:"transactionID"`
	OutputIndex   uint16 `json:"outputIndex"`
}

// NewOutputID returns an OutputID from the given ledgerstate.OutputID.
func NewOutputID(outputID ledgerstate.OutputID) *OutputID {
	return &OutputID{
		Base58:        outputID.Base58(),
		TransactionID: outputID.TransactionID().Base58(),
		OutputIndex:   outputID.OutputIndex(),
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region OutputMetadata ///////////////////////////////////////////////////////////////////////////////////////////////

// OutputMetadata represents the JSON model of the ledger metadata of an output.
type OutputMetadata struct {
	OutputID            *OutputID `json:"outputID"`
	Spent               bool      `json:"spent"`
	BookedTimestamp     int64     `json:"bookedTimestamp"`
	ConfirmedConsumerID string    `json:"confirmedConsumerID,omitempty"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region OutputsOnAddress /////////////////////////////////////////////////////////////////////////////////////////////

// OutputsOnAddress is the response of a request for the outputs that live on an address.
type OutputsOnAddress struct {
	Address *Address        `json:"address"`
	Outputs []*WalletOutput `json:"outputs"`
	Error   string          `json:"error,omitempty"`
}

// WalletOutput groups an output with its ledger metadata.
type WalletOutput struct {
	Output   *Output         `json:"output"`
	Metadata *OutputMetadata `json:"metadata"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region PostTransaction //////////////////////////////////////////////////////////////////////////////////////////////

// PostTransactionRequest is the request for the endpoint that submits a transaction to the node.
type PostTransactionRequest struct {
	TransactionBytes []byte `json:"txn_bytes"`
}

// PostTransactionResponse is the response of the endpoint that submits a transaction to the node.
type PostTransactionResponse struct {
	TransactionID string `json:"transaction_id"`
	Error         string `json:"error,omitempty"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TransactionMetadata //////////////////////////////////////////////////////////////////////////////////////////

// TransactionMetadata is the response of a request for the metadata of a transaction.
type TransactionMetadata struct {
	TransactionID string `json:"transactionID"`
	Confirmed     bool   `json:"confirmed"`
	Error         string `json:"error,omitempty"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
