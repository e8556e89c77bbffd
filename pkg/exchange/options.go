package exchange

// Option adjusts a single call.
type Option func(*Options)

// Options collects per-call settings. Zero values mean "not set".
type Options struct {
	Limit         int
	ClientOrderID string
	StopPrice     float64
	IcebergQty    float64
}

// WithLimit sets the result size, e.g. the order book depth.
func WithLimit(limit int) Option {
	return func(o *Options) {
		o.Limit = limit
	}
}

// WithClientOrderID sets newClientOrderId on an order placement.
func WithClientOrderID(id string) Option {
	return func(o *Options) {
		o.ClientOrderID = id
	}
}

// WithStopPrice sets stopPrice on an order placement.
func WithStopPrice(price float64) Option {
	return func(o *Options) {
		o.StopPrice = price
	}
}

// WithIcebergQty sets icebergQty on a limit order placement.
func WithIcebergQty(qty float64) Option {
	return func(o *Options) {
		o.IcebergQty = qty
	}
}

func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
