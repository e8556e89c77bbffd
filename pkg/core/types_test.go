package core

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnums_String(t *testing.T) {
	assert.Equal(t, "BUY", SideBuy.String())
	assert.Equal(t, "SELL", SideSell.String())
	assert.Equal(t, "LIMIT", TypeLimit.String())
	assert.Equal(t, "MARKET", TypeMarket.String())
	assert.Equal(t, "GTC", GTC.String())
	assert.Equal(t, "IOC", IOC.String())
}

func TestOrderBook_Decode(t *testing.T) {
	body := `{"lastUpdateId":1027024,"bids":[["4.00000000","431.00000000"]],"asks":[["4.00000200","12.00000000"],["4.00000300","1.5"]]}`

	var book OrderBook
	require.NoError(t, sonic.Unmarshal([]byte(body), &book))

	assert.Equal(t, int64(1027024), book.LastUpdateID)
	require.Len(t, book.Bids, 1)
	assert.Equal(t, "4.00000000", book.Bids[0].Price())
	assert.Equal(t, "431.00000000", book.Bids[0].Quantity())
	require.Len(t, book.Asks, 2)
	assert.Equal(t, "1.5", book.Asks[1].Quantity())
}

func TestExchangeInfo_Decode(t *testing.T) {
	body := `{
		"timezone":"UTC",
		"serverTime":1508631584636,
		"rateLimits":[{"rateLimitType":"REQUEST_WEIGHT","interval":"MINUTE","intervalNum":1,"limit":1200}],
		"symbols":[{
			"symbol":"ETHBTC","status":"TRADING","baseAsset":"ETH","baseAssetPrecision":8,
			"quoteAsset":"BTC","quotePrecision":8,"orderTypes":["LIMIT","MARKET"],"icebergAllowed":true,
			"filters":[{"filterType":"PRICE_FILTER","minPrice":"0.00000100","tickSize":"0.00000100"}]
		}]
	}`

	var info ExchangeInfo
	require.NoError(t, sonic.Unmarshal([]byte(body), &info))

	assert.Equal(t, "UTC", info.Timezone)
	require.Len(t, info.RateLimits, 1)
	assert.Equal(t, 1200, info.RateLimits[0].Limit)
	require.Len(t, info.Symbols, 1)
	assert.Equal(t, []string{"LIMIT", "MARKET"}, info.Symbols[0].OrderTypes)
	assert.Equal(t, "PRICE_FILTER", info.Symbols[0].Filters[0]["filterType"])
}

func TestOrder_Decode(t *testing.T) {
	body := `{"symbol":"BTCUSDT","orderId":28,"clientOrderId":"6gCrw2kRUAF9CvJDGP16IP","transactTime":1507725176595,
		"price":"0.10000000","origQty":"10.00000000","executedQty":"0.00000000","status":"NEW",
		"timeInForce":"GTC","type":"LIMIT","side":"SELL"}`

	var order Order
	require.NoError(t, sonic.Unmarshal([]byte(body), &order))

	assert.Equal(t, int64(28), order.OrderID)
	assert.Equal(t, int64(1507725176595), order.TransactTime)
	assert.Equal(t, "SELL", order.Side)
	assert.Equal(t, "0.10000000", order.Price)
	assert.Zero(t, order.UpdateTime)
}

func TestAccount_Balance(t *testing.T) {
	body := `{"makerCommission":15,"canTrade":true,"balances":[
		{"asset":"BTC","free":"4723846.89208129","locked":"0.00000000"},
		{"asset":"LTC","free":"4763368.68006011","locked":"1.00000000"}]}`

	var account Account
	require.NoError(t, sonic.Unmarshal([]byte(body), &account))

	assert.Equal(t, 15, account.MakerCommission)
	assert.True(t, account.CanTrade)

	ltc, ok := account.Balance("LTC")
	require.True(t, ok)
	assert.Equal(t, "1.00000000", ltc.Locked)

	_, ok = account.Balance("ETH")
	assert.False(t, ok)
}

func TestProducts_Decode(t *testing.T) {
	body := `{"data":[{"symbol":"BNBBTC","baseAsset":"BNB","quoteAsset":"BTC","active":true,"tickSize":"0.0000001"}]}`

	var products Products
	require.NoError(t, sonic.Unmarshal([]byte(body), &products))

	require.Len(t, products.Data, 1)
	assert.Equal(t, "BNB", products.Data[0].BaseAsset)
	assert.True(t, products.Data[0].Active)
}
