package jsonmodels

// region InfoResponse /////////////////////////////////////////////////////////////////////////////////////////////////

// InfoResponse holds the response of the node info endpoint.
type InfoResponse struct {
	// version of the node software
	Version string `json:"version,omitempty"`
	// whether the node is synchronized
	Synced bool `json:"synced"`
	// human readable part used for bech32 encoded addresses on this network
	Bech32HRP string `json:"bech32HRP"`
	// total supply of tokens in the network
	TokenSupply uint64 `json:"tokenSupply"`
	// minimum amount of tokens an output needs to carry
	MinOutputAmount uint64 `json:"minOutputAmount"`
	// current time of the ledger as a unix timestamp in seconds
	LedgerTime int64 `json:"ledgerTime"`
	// error of the response
	Error string `json:"error,omitempty"`
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
