// Package prices looks up the fiat price of the IOTA token and converts ledger amounts into fiat values.
package prices

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
)

const (
	// PriceAPIURL is the url of the public price API.
	PriceAPIURL = "https://api.coingecko.com/api/v3/simple/price"

	// BaseTokenID is the identifier of the IOTA token at the price API.
	BaseTokenID = "iota"

	// pricePrecision is the number of decimal places the price API is asked to return.
	pricePrecision = "18"
)

// ErrPriceNotFound is returned when the price API carries no rate for the requested currency.
var ErrPriceNotFound = errors.New("price not found")

// region Client ///////////////////////////////////////////////////////////////////////////////////////////////////////

// Client fetches token prices from the public price API.
type Client struct {
	client *resty.Client
}

// NewClient is the constructor for the price Client.
func NewClient(apiURL ...string) *Client {
	hostURL := PriceAPIURL
	if len(apiURL) > 0 {
		hostURL = apiURL[0]
	}

	return &Client{
		client: resty.New().SetHostURL(hostURL),
	}
}

// priceResponse is the wire model of the price API response.
type priceResponse struct {
	Iota map[string]float64 `json:"iota"`
}

// Price returns the current price of one IOTA token in the given currency.
func (c *Client) Price(currency string) (price float64, err error) {
	currency = strings.ToLower(currency)

	response := &priceResponse{}
	res, err := c.client.R().
		SetQueryParams(map[string]string{
			"ids":           BaseTokenID,
			"vs_currencies": currency,
			"precision":     pricePrecision,
		}).
		SetResult(response).
		Get("")
	if err != nil {
		return 0, errors.Errorf("failed to query price API: %w", err)
	}
	if res.IsError() {
		return 0, errors.Errorf("price API returned status %s", res.Status())
	}

	price, ok := response.Iota[currency]
	if !ok {
		return 0, errors.Errorf("price in '%s' not found: %w", currency, ErrPriceNotFound)
	}

	return price, nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Convert //////////////////////////////////////////////////////////////////////////////////////////////////////

// Convert turns an amount of base units (1_000_000 base units per token) into its fiat value at the given rate.
func Convert(amount uint64, rate float64) float64 {
	return float64(amount) / 1_000_000. * rate
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
