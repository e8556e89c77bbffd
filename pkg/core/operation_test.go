package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpGetTicker, "GET_TICKER"},
		{OpGetOrderBook, "GET_ORDER_BOOK"},
		{OpGetExchangeInfo, "GET_EXCHANGE_INFO"},
		{OpGetProducts, "GET_PRODUCTS"},
		{OpPlaceLimitOrder, "PLACE_LIMIT_ORDER"},
		{OpPlaceMarketOrder, "PLACE_MARKET_ORDER"},
		{OpGetOrder, "GET_ORDER"},
		{OpGetAllOrders, "GET_ALL_ORDERS"},
		{OpGetOpenOrders, "GET_OPEN_ORDERS"},
		{OpCancelOrder, "CANCEL_ORDER"},
		{OpGetAccount, "GET_ACCOUNT"},
		{Operation(-1), "UNKNOWN"},
		{Operation(100), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.String())
		})
	}
}
