package wallet

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/funds-tools/client"
	"github.com/iotaledger/funds-tools/packages/ledgerstate"
)

// region WebConnector /////////////////////////////////////////////////////////////////////////////////////////////////

// WebConnector implements a connector that uses the web API to connect to a node to implement the required functions
// for the wallet.
type WebConnector struct {
	client *client.NodeAPI
}

// NewWebConnector is the constructor for the WebConnector.
func NewWebConnector(baseURL string, setters ...client.Option) *WebConnector {
	return &WebConnector{
		client: client.NewNodeAPI(baseURL, setters...),
	}
}

// ServerStatus retrieves the parameters of the connected node with the info API.
func (webConnector *WebConnector) ServerStatus() (status ServerStatus, err error) {
	response, err := webConnector.client.Info()
	if err != nil {
		return
	}

	status.Version = response.Version
	status.Synced = response.Synced
	status.Bech32HRP = response.Bech32HRP
	status.TokenSupply = response.TokenSupply
	status.MinOutputAmount = response.MinOutputAmount
	status.LedgerTime = time.Unix(response.LedgerTime, 0)

	return
}

// UnspentOutputs returns the outputs on the given address that have not been spent yet. The optional filters are pushed
// down to the node so that outputs with the filtered unlock conditions are never transferred.
func (webConnector *WebConnector) UnspentOutputs(addr ledgerstate.Address, filters ...OutputFilter) (outputs Outputs, err error) {
	parameters := make([]client.OutputsQueryParameter, 0, len(filters))
	for _, filter := range filters {
		switch filter {
		case FilterExpiration:
			parameters = append(parameters, client.HasExpirationCondition(false))
		case FilterStorageDepositReturn:
			parameters = append(parameters, client.HasStorageDepositReturnCondition(false))
		default:
			err = errors.Errorf("unknown OutputFilter: %d", filter)
			return
		}
	}

	response, err := webConnector.client.GetAddressOutputs(addr.Base58(), parameters...)
	if err != nil {
		return
	}

	outputs = make(Outputs, 0, len(response.Outputs))
	for _, responseOutput := range response.Outputs {
		parsedOutput, pErr := responseOutput.Output.ToLedgerstateOutput()
		if pErr != nil {
			err = errors.Errorf("failed to parse output: %w", pErr)
			return
		}
		outputID, pErr := ledgerstate.OutputIDFromBase58(responseOutput.Output.OutputID.Base58)
		if pErr != nil {
			err = errors.Errorf("failed to parse OutputID: %w", pErr)
			return
		}

		if responseOutput.Metadata.Spent {
			continue
		}

		outputs = append(outputs, &Output{
			Address:  addr,
			OutputID: outputID,
			Object:   parsedOutput,
			Metadata: OutputMetadata{
				Spent:  responseOutput.Metadata.Spent,
				Booked: time.Unix(responseOutput.Metadata.BookedTimestamp, 0),
			},
		})
	}

	return
}

// SendTransaction sends a new transaction to the network.
func (webConnector *WebConnector) SendTransaction(tx *ledgerstate.Transaction) (err error) {
	_, err = webConnector.client.PostTransaction(tx.Bytes())

	return
}

// TransactionConfirmed returns whether the transaction with the given ID was confirmed by the network.
func (webConnector *WebConnector) TransactionConfirmed(transactionID ledgerstate.TransactionID) (confirmed bool, err error) {
	response, err := webConnector.client.GetTransactionMetadata(transactionID.Base58())
	if err != nil {
		return
	}

	return response.Confirmed, nil
}

// code contract - make sure the WebConnector implements the Connector interface
var _ Connector = &WebConnector{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
