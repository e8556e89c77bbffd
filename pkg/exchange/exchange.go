package exchange

import (
	"context"

	"github.com/cockroachdb/apd/v3"

	"bnrest/pkg/core"
)

// Exchange defines the REST surface of the client: public market data,
// order placement, order queries, cancellation and account information.
// Every method issues exactly one HTTP request, or none when the call fails
// validation or lacks credentials.
type Exchange interface {
	Name() string

	GetTicker(ctx context.Context, symbol string) (*core.Ticker, error)
	GetOrderBook(ctx context.Context, symbol string, opts ...Option) (*core.OrderBook, error)
	GetExchangeInfo(ctx context.Context) (*core.ExchangeInfo, error)
	GetProducts(ctx context.Context) (*core.Products, error)

	BuyLimit(ctx context.Context, symbol string, quantity, price apd.Decimal, opts ...Option) (*core.Order, error)
	SellLimit(ctx context.Context, symbol string, quantity, price apd.Decimal, opts ...Option) (*core.Order, error)
	SellMarket(ctx context.Context, symbol string, quantity apd.Decimal, opts ...Option) (*core.Order, error)

	QueryOrder(ctx context.Context, symbol string, orderID int64) (*core.Order, error)
	AllOrders(ctx context.Context, args *core.Args) ([]core.Order, error)
	OpenOrders(ctx context.Context, args *core.Args) ([]core.Order, error)
	Cancel(ctx context.Context, symbol string, orderID int64) (*core.Order, error)

	GetAccount(ctx context.Context) (*core.Account, error)

	Close() error
}
