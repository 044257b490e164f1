package prices

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Price(t *testing.T) {
	client := NewClient()
	httpmock.ActivateNonDefault(client.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponderWithQuery(
		http.MethodGet, PriceAPIURL,
		"ids=iota&precision=18&vs_currencies=eur",
		httpmock.NewJsonResponderOrPanic(200, map[string]map[string]float64{
			"iota": {"eur": 0.171717},
		}),
	)

	price, err := client.Price("EUR")
	require.NoError(t, err)
	assert.InDelta(t, 0.171717, price, 1e-9)
}

func TestClient_Price_CurrencyNotFound(t *testing.T) {
	client := NewClient()
	httpmock.ActivateNonDefault(client.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		http.MethodGet, PriceAPIURL,
		httpmock.NewJsonResponderOrPanic(200, map[string]map[string]float64{
			"iota": {"usd": 0.19},
		}),
	)

	_, err := client.Price("xyz")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPriceNotFound)
}

func TestClient_Price_APIError(t *testing.T) {
	client := NewClient()
	httpmock.ActivateNonDefault(client.client.GetClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		http.MethodGet, PriceAPIURL,
		httpmock.NewStringResponder(429, "too many requests"),
	)

	_, err := client.Price("eur")
	require.Error(t, err)
}

func TestConvert(t *testing.T) {
	assert.InDelta(t, 0.9, Convert(3000000, 0.3), 1e-9)
	assert.InDelta(t, 0., Convert(0, 0.3), 1e-9)
	assert.InDelta(t, 1.5, Convert(5000000, 0.3), 1e-9)
}
