package binance

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/rs/zerolog"

	"bnrest/internal/transport"
	"bnrest/pkg/core"
	"bnrest/pkg/exchange"
)

// Transport is the HTTP collaborator the exchange sends requests through.
// Signed requests carry their whole query in path.
type Transport interface {
	Get(ctx context.Context, path string, query map[string]string) (*transport.Response, error)
	Post(ctx context.Context, path string) (*transport.Response, error)
	Delete(ctx context.Context, path string) (*transport.Response, error)
	Close() error
}

// BinanceExchange implements the Exchange interface for the Binance spot REST API.
// It is immutable after New and safe for concurrent use.
type BinanceExchange struct {
	creds     core.Credentials
	transport Transport
	protocol  *Protocol
	queries   *QueryBuilder
	logger    zerolog.Logger
}

// Option is a functional option for configuring the BinanceExchange.
type Option func(*Options)

// Options holds configuration options for the BinanceExchange.
type Options struct {
	Transport Transport
	Logger    zerolog.Logger
	Clock     func() time.Time
}

// WithTransport replaces the default resty transport.
func WithTransport(t Transport) Option {
	return func(o *Options) {
		o.Transport = t
	}
}

// WithLogger returns an option that sets the logger for the exchange.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock sets the time source used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Clock = now
	}
}

// New creates a new BinanceExchange from config. Malformed keys or config
// values fail with an INVALID_ARGUMENT error.
func New(config *core.Config, opts ...Option) (*BinanceExchange, error) {
	if config == nil {
		return nil, core.NewError(core.ErrCodeInvalidArgument, "config is required")
	}

	creds, err := config.Credentials()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	options := &Options{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.Logger
	if config.LogLevel != "" {
		level, err := zerolog.ParseLevel(config.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		logger = logger.Level(level)
	}
	logger = logger.With().Str("exchange", "binance").Logger()

	t := options.Transport
	if t == nil {
		t, err = transport.NewClient(&transport.Config{
			BaseURL: config.ResolvedBaseURL(),
			Timeout: config.Timeout,
			APIKey:  creds.APIKey(),
			Headers: config.Headers,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("create http client: %w", err)
		}
	}

	return &BinanceExchange{
		creds:     creds,
		transport: t,
		protocol:  NewProtocol(),
		queries:   NewQueryBuilder(creds, config.Timeout).withClock(options.Clock),
		logger:    logger,
	}, nil
}

// Name returns the exchange identifier "binance".
func (e *BinanceExchange) Name() string {
	return "binance"
}

// Close releases resources used by the exchange, including the HTTP client.
func (e *BinanceExchange) Close() error {
	if e.transport != nil {
		return e.transport.Close()
	}
	return nil
}

// Do runs op with args and decodes the response body into out.
//
// Signed operations check credentials first, then every operation validates
// args; both happen before anything is sent. Transport failures and non-2xx
// responses come back as *core.ExchangeError.
func (e *BinanceExchange) Do(ctx context.Context, op core.Operation, args *core.Args, out any) error {
	if e.protocol.IsSigned(op) {
		if err := e.creds.RequireSigned(); err != nil {
			return err
		}
	}

	req, err := e.protocol.BuildRequest(op, args)
	if err != nil {
		return err
	}

	resp, err := e.send(ctx, req)
	if err != nil {
		return err
	}

	return e.protocol.ParseResponse(op, resp, out)
}

func (e *BinanceExchange) send(ctx context.Context, req *core.Request) (*transport.Response, error) {
	var (
		resp *transport.Response
		err  error
	)

	if !req.Signed {
		resp, err = e.transport.Get(ctx, req.Path, req.Args.StringMap())
	} else {
		var query string
		query, err = e.queries.Build(req.Path, req.Args)
		if err != nil {
			return nil, err
		}

		event := e.logger.Debug()
		if req.IsWrite() {
			event = e.logger.Info()
		}
		event.Str("op", req.Op.String()).
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("signed request")
		e.logger.Trace().Str("query", query).Msg("signed query")

		switch req.Method {
		case http.MethodGet:
			resp, err = e.transport.Get(ctx, query, nil)
		case http.MethodPost:
			resp, err = e.transport.Post(ctx, query)
		case http.MethodDelete:
			resp, err = e.transport.Delete(ctx, query)
		default:
			return nil, fmt.Errorf("unsupported http method: %s", req.Method)
		}
	}

	if err != nil {
		e.logger.Error().Err(err).
			Str("op", req.Op.String()).
			Msg("request failed")
		return nil, core.NewNetworkError(e.Name(), err)
	}
	return resp, nil
}

// GetTicker retrieves 24 hour statistics for the specified symbol.
func (e *BinanceExchange) GetTicker(ctx context.Context, symbol string) (*core.Ticker, error) {
	args := core.NewArgs().Set("symbol", symbol)

	var ticker core.Ticker
	if err := e.Do(ctx, core.OpGetTicker, args, &ticker); err != nil {
		return nil, err
	}
	return &ticker, nil
}

// GetOrderBook retrieves the order book for the specified symbol.
// The depth defaults to DefaultDepthLimit; use exchange.WithLimit to change it.
func (e *BinanceExchange) GetOrderBook(ctx context.Context, symbol string, opts ...exchange.Option) (*core.OrderBook, error) {
	options := exchange.ApplyOptions(opts...)

	limit := DefaultDepthLimit
	if options.Limit > 0 {
		limit = options.Limit
	}
	args := core.NewArgs().
		Set("symbol", symbol).
		Set("limit", limit)

	var book core.OrderBook
	if err := e.Do(ctx, core.OpGetOrderBook, args, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// GetExchangeInfo retrieves trading rules and symbol metadata.
func (e *BinanceExchange) GetExchangeInfo(ctx context.Context) (*core.ExchangeInfo, error) {
	var info core.ExchangeInfo
	if err := e.Do(ctx, core.OpGetExchangeInfo, core.NewArgs(), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetProducts retrieves the public product list.
func (e *BinanceExchange) GetProducts(ctx context.Context) (*core.Products, error) {
	var products core.Products
	if err := e.Do(ctx, core.OpGetProducts, core.NewArgs(), &products); err != nil {
		return nil, err
	}
	return &products, nil
}

// BuyLimit places a GTC limit buy order.
func (e *BinanceExchange) BuyLimit(ctx context.Context, symbol string, quantity, price apd.Decimal, opts ...exchange.Option) (*core.Order, error) {
	return e.placeLimit(ctx, core.SideBuy, symbol, quantity, price, opts...)
}

// SellLimit places a GTC limit sell order.
func (e *BinanceExchange) SellLimit(ctx context.Context, symbol string, quantity, price apd.Decimal, opts ...exchange.Option) (*core.Order, error) {
	return e.placeLimit(ctx, core.SideSell, symbol, quantity, price, opts...)
}

func (e *BinanceExchange) placeLimit(ctx context.Context, side core.OrderSide, symbol string, quantity, price apd.Decimal, opts ...exchange.Option) (*core.Order, error) {
	args := core.NewArgs().
		Set("symbol", symbol).
		Set("side", side.String()).
		Set("type", core.TypeLimit.String()).
		Set("timeInForce", core.GTC.String()).
		Set("quantity", core.FormatValue(quantity)).
		Set("price", core.FormatValue(price))
	applyOrderOptions(args, exchange.ApplyOptions(opts...))

	var order core.Order
	if err := e.Do(ctx, core.OpPlaceLimitOrder, args, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SellMarket places a market sell order.
func (e *BinanceExchange) SellMarket(ctx context.Context, symbol string, quantity apd.Decimal, opts ...exchange.Option) (*core.Order, error) {
	args := core.NewArgs().
		Set("symbol", symbol).
		Set("side", core.SideSell.String()).
		Set("type", core.TypeMarket.String()).
		Set("quantity", core.FormatValue(quantity))
	applyOrderOptions(args, exchange.ApplyOptions(opts...))

	var order core.Order
	if err := e.Do(ctx, core.OpPlaceMarketOrder, args, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func applyOrderOptions(args *core.Args, options *exchange.Options) {
	if options.ClientOrderID != "" {
		args.Set("newClientOrderId", options.ClientOrderID)
	}
	if options.StopPrice > 0 {
		args.Set("stopPrice", options.StopPrice)
	}
	if options.IcebergQty > 0 {
		args.Set("icebergQty", options.IcebergQty)
	}
}

// QueryOrder retrieves an order by its exchange-assigned ID.
func (e *BinanceExchange) QueryOrder(ctx context.Context, symbol string, orderID int64) (*core.Order, error) {
	args := core.NewArgs().
		Set("symbol", symbol).
		Set("orderId", orderID)

	var order core.Order
	if err := e.Do(ctx, core.OpGetOrder, args, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// AllOrders lists every order for a symbol. args must hold symbol and may
// hold orderId, limit, startTime and endTime. A nil args is treated as empty.
func (e *BinanceExchange) AllOrders(ctx context.Context, args *core.Args) ([]core.Order, error) {
	if args == nil {
		args = core.NewArgs()
	}

	var orders []core.Order
	if err := e.Do(ctx, core.OpGetAllOrders, args, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OpenOrders lists open orders, for one symbol when args holds one.
// A nil args is treated as empty.
func (e *BinanceExchange) OpenOrders(ctx context.Context, args *core.Args) ([]core.Order, error) {
	if args == nil {
		args = core.NewArgs()
	}

	var orders []core.Order
	if err := e.Do(ctx, core.OpGetOpenOrders, args, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Cancel cancels an order by its exchange-assigned ID.
func (e *BinanceExchange) Cancel(ctx context.Context, symbol string, orderID int64) (*core.Order, error) {
	args := core.NewArgs().
		Set("symbol", symbol).
		Set("orderId", orderID)

	var order core.Order
	if err := e.Do(ctx, core.OpCancelOrder, args, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAccount retrieves account information and balances.
func (e *BinanceExchange) GetAccount(ctx context.Context) (*core.Account, error) {
	var account core.Account
	if err := e.Do(ctx, core.OpGetAccount, core.NewArgs(), &account); err != nil {
		return nil, err
	}
	return &account, nil
}
