package client

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/iotaledger/funds-tools/packages/jsonmodels"
)

const (
	// basic routes
	routeGetAddresses    = "ledgerstate/addresses/"
	routeGetTransactions = "ledgerstate/transactions/"
	routeTransactions    = "ledgerstate/transactions"

	// route path modifiers
	pathOutputs  = "/outputs"
	pathMetadata = "/metadata"
)

// OutputsQueryParameter narrows down the outputs that are returned for an address.
type OutputsQueryParameter func(url.Values)

// HasTimelockCondition filters outputs by the presence of a timelock unlock condition.
func HasTimelockCondition(value bool) OutputsQueryParameter {
	return func(values url.Values) {
		values.Set("hasTimelock", strconv.FormatBool(value))
	}
}

// HasExpirationCondition filters outputs by the presence of an expiration unlock condition.
func HasExpirationCondition(value bool) OutputsQueryParameter {
	return func(values url.Values) {
		values.Set("hasExpiration", strconv.FormatBool(value))
	}
}

// HasStorageDepositReturnCondition filters outputs by the presence of a storage deposit return unlock condition.
func HasStorageDepositReturnCondition(value bool) OutputsQueryParameter {
	return func(values url.Values) {
		values.Set("hasStorageDepositReturn", strconv.FormatBool(value))
	}
}

// GetAddressOutputs gets the outputs that live on an address, optionally narrowed down by query parameters.
func (api *NodeAPI) GetAddressOutputs(base58EncodedAddress string, parameters ...OutputsQueryParameter) (*jsonmodels.OutputsOnAddress, error) {
	res := &jsonmodels.OutputsOnAddress{}
	if err := api.do(http.MethodGet, func() string {
		route := strings.Join([]string{routeGetAddresses, base58EncodedAddress, pathOutputs}, "")
		if len(parameters) == 0 {
			return route
		}

		values := url.Values{}
		for _, parameter := range parameters {
			parameter(values)
		}
		return strings.Join([]string{route, "?", values.Encode()}, "")
	}(), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}

// PostTransaction sends the transaction(bytes) to the node and returns the allocated transaction ID.
func (api *NodeAPI) PostTransaction(transactionBytes []byte) (*jsonmodels.PostTransactionResponse, error) {
	res := &jsonmodels.PostTransactionResponse{}
	if err := api.do(http.MethodPost, routeTransactions,
		&jsonmodels.PostTransactionRequest{TransactionBytes: transactionBytes}, res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetTransactionMetadata gets the metadata of a transaction.
func (api *NodeAPI) GetTransactionMetadata(base58EncodedTransactionID string) (*jsonmodels.TransactionMetadata, error) {
	res := &jsonmodels.TransactionMetadata{}
	if err := api.do(http.MethodGet, func() string {
		return strings.Join([]string{routeGetTransactions, base58EncodedTransactionID, pathMetadata}, "")
	}(), nil, res); err != nil {
		return nil, err
	}
	return res, nil
}
