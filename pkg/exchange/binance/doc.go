// Package binance implements the Binance spot REST API.
//
// The package includes:
//   - BinanceExchange: the client, one HTTP request per call
//   - Protocol: the operation table, argument validation and response parsing
//   - QueryBuilder: HMAC-SHA256 signing of private requests
//
// Arguments are checked before anything is sent. Signed operations without a
// secret key fail with core.ErrCredentialsRequired and make no HTTP call.
//
// Example usage:
//
//	cfg := core.DefaultConfig().WithCredentials(apiKey, secretKey)
//	ex, err := binance.New(cfg)
//	if err != nil {
//		return err
//	}
//	defer ex.Close()
//
//	order, err := ex.BuyLimit(ctx, "BNBBTC", *apd.New(1, 0), *apd.New(1, -1))
package binance
