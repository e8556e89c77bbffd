package binance

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"

	"bnrest/internal/transport"
	"bnrest/pkg/core"
)

// DefaultDepthLimit is the order book depth requested when none is given.
const DefaultDepthLimit = 50

// endpoint describes how one operation maps onto the REST API.
type endpoint struct {
	method   string
	path     string
	required []string
	signed   bool
}

var endpoints = map[core.Operation]endpoint{
	core.OpGetTicker: {
		method:   http.MethodGet,
		path:     "api/v1/ticker/24hr",
		required: []string{"symbol"},
	},
	core.OpGetOrderBook: {
		method:   http.MethodGet,
		path:     "api/v1/depth",
		required: []string{"symbol"},
	},
	core.OpGetExchangeInfo: {
		method:   http.MethodGet,
		path:     "api/v1/exchangeInfo",
		required: []string{},
	},
	core.OpGetProducts: {
		method:   http.MethodGet,
		path:     "exchange/public/product",
		required: []string{},
	},
	core.OpPlaceLimitOrder: {
		method:   http.MethodPost,
		path:     "api/v3/order",
		required: []string{"symbol", "side", "type", "timeInForce", "quantity", "price"},
		signed:   true,
	},
	core.OpPlaceMarketOrder: {
		method:   http.MethodPost,
		path:     "api/v3/order",
		required: []string{"symbol", "side", "type", "quantity"},
		signed:   true,
	},
	core.OpGetOrder: {
		method:   http.MethodGet,
		path:     "api/v3/order",
		required: []string{"symbol", "orderId"},
		signed:   true,
	},
	core.OpGetAllOrders: {
		method:   http.MethodGet,
		path:     "api/v3/allOrders",
		required: []string{"symbol"},
		signed:   true,
	},
	core.OpGetOpenOrders: {
		method:   http.MethodGet,
		path:     "api/v3/openOrders",
		required: []string{},
		signed:   true,
	},
	core.OpCancelOrder: {
		method:   http.MethodDelete,
		path:     "api/v3/order",
		required: []string{"symbol", "orderId"},
		signed:   true,
	},
	core.OpGetAccount: {
		method:   http.MethodGet,
		path:     "api/v3/account",
		required: []string{},
		signed:   true,
	},
}

// Protocol maps operations to validated requests and decodes responses.
// It implements no transport of its own.
type Protocol struct{}

// NewProtocol creates a new Binance protocol instance.
func NewProtocol() *Protocol {
	return &Protocol{}
}

// Name returns the protocol identifier "binance".
func (p *Protocol) Name() string {
	return "binance"
}

// SupportedOperations returns the list of operations supported by this protocol.
func (p *Protocol) SupportedOperations() []core.Operation {
	return []core.Operation{
		core.OpGetTicker,
		core.OpGetOrderBook,
		core.OpGetExchangeInfo,
		core.OpGetProducts,
		core.OpPlaceLimitOrder,
		core.OpPlaceMarketOrder,
		core.OpGetOrder,
		core.OpGetAllOrders,
		core.OpGetOpenOrders,
		core.OpCancelOrder,
		core.OpGetAccount,
	}
}

// RequiredFields returns the fields op requires.
func (p *Protocol) RequiredFields(op core.Operation) ([]string, bool) {
	ep, ok := endpoints[op]
	if !ok {
		return nil, false
	}
	return append([]string{}, ep.required...), true
}

// IsSigned reports whether op targets a signed endpoint.
func (p *Protocol) IsSigned(op core.Operation) bool {
	return endpoints[op].signed
}

// BuildRequest validates args against the operation's required fields and
// parameter rules and returns the request to send. Credentials are not
// checked here.
func (p *Protocol) BuildRequest(op core.Operation, args *core.Args) (*core.Request, error) {
	ep, ok := endpoints[op]
	if !ok {
		return nil, core.NewError(core.ErrCodeInvalidArgument, fmt.Sprintf("unsupported operation: %s", op))
	}

	if err := Validate(args, ep.required); err != nil {
		return nil, err
	}

	return core.NewRequest(op, ep.method, ep.path).
		SetArgs(args).
		SetSigned(ep.signed), nil
}

// ParseResponse turns a non-2xx response into an *core.ExchangeError and
// otherwise decodes the body into out.
func (p *Protocol) ParseResponse(op core.Operation, resp *transport.Response, out any) error {
	if resp == nil {
		return core.NewNetworkError(p.Name(), fmt.Errorf("nil response"))
	}

	if !resp.IsSuccess() {
		var apiErr binanceAPIError
		if err := sonic.Unmarshal(resp.Body, &apiErr); err == nil && apiErr.Code != 0 {
			return core.NewExchangeError(p.Name(), resp.StatusCode, apiErr.Code, apiErr.Msg)
		}
		return core.NewExchangeError(p.Name(), resp.StatusCode, 0, strings.TrimSpace(string(resp.Body)))
	}

	if out == nil {
		return nil
	}
	if err := resp.Unmarshal(out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", strings.ToLower(op.String()), err)
	}
	return nil
}

type binanceAPIError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}
