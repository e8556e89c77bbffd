package core

// Operation represents a type of action that can be performed on an exchange.
type Operation int

// Operation constants define all supported exchange operations.
const (
	// OpGetTicker retrieves 24 hour ticker statistics for a symbol.
	OpGetTicker Operation = iota
	// OpGetOrderBook retrieves the current order book depth.
	OpGetOrderBook
	// OpGetExchangeInfo retrieves trading rules and symbol metadata.
	OpGetExchangeInfo
	// OpGetProducts retrieves the public product list.
	OpGetProducts
	// OpPlaceLimitOrder submits a new limit order.
	OpPlaceLimitOrder
	// OpPlaceMarketOrder submits a new market order.
	OpPlaceMarketOrder
	// OpGetOrder retrieves details of a specific order.
	OpGetOrder
	// OpGetAllOrders retrieves every order for a symbol.
	OpGetAllOrders
	// OpGetOpenOrders retrieves all open orders.
	OpGetOpenOrders
	// OpCancelOrder cancels an existing order.
	OpCancelOrder
	// OpGetAccount retrieves account information and balances.
	OpGetAccount
)

// String returns the string representation of the operation.
func (o Operation) String() string {
	names := [...]string{
		"GET_TICKER",
		"GET_ORDER_BOOK",
		"GET_EXCHANGE_INFO",
		"GET_PRODUCTS",
		"PLACE_LIMIT_ORDER",
		"PLACE_MARKET_ORDER",
		"GET_ORDER",
		"GET_ALL_ORDERS",
		"GET_OPEN_ORDERS",
		"CANCEL_ORDER",
		"GET_ACCOUNT",
	}
	if o < 0 || int(o) >= len(names) {
		return "UNKNOWN"
	}
	return names[o]
}
