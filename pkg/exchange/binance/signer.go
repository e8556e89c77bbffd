package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"bnrest/pkg/core"
)

// Sign returns the lowercase hex HMAC-SHA256 of message keyed with secret.
func Sign(message, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(message))
	return hex.EncodeToString(h.Sum(nil))
}

// QueryBuilder produces signed query strings for private endpoints.
// It holds no mutable state and is safe for concurrent use.
type QueryBuilder struct {
	creds      core.Credentials
	recvWindow time.Duration
	now        func() time.Time
}

// NewQueryBuilder creates a builder signing with creds. A recvWindow of at
// least one millisecond is sent, in whole milliseconds, with every signed query.
func NewQueryBuilder(creds core.Credentials, recvWindow time.Duration) *QueryBuilder {
	return &QueryBuilder{
		creds:      creds,
		recvWindow: recvWindow,
		now:        time.Now,
	}
}

// withClock returns a copy of the builder reading the time from now.
func (b *QueryBuilder) withClock(now func() time.Time) *QueryBuilder {
	c := *b
	c.now = now
	return &c
}

// Build signs args for path using the current time.
func (b *QueryBuilder) Build(path string, args *core.Args) (string, error) {
	return b.BuildAt(path, args, b.now().UnixMilli())
}

// BuildAt signs args for path with a fixed millisecond timestamp and returns
//
//	path?k1=v1&...&timestamp=<ms>&signature=<hex>
//
// The signature covers everything after the "?" up to the timestamp clause.
// A timestamp key in args is dropped; args itself is left untouched.
func (b *QueryBuilder) BuildAt(path string, args *core.Args, timestamp int64) (string, error) {
	if err := b.creds.RequireSigned(); err != nil {
		return "", err
	}
	if path == "" {
		return "", core.NewError(core.ErrCodeInvalidArgument, "path is required")
	}
	if args == nil {
		return "", core.NewError(core.ErrCodeInvalidArgument, "args are required")
	}

	params := args.Clone()
	params.Delete("timestamp")
	if ms := b.recvWindow.Milliseconds(); ms > 0 {
		params.Set("recvWindow", ms)
	}

	payload := "timestamp=" + strconv.FormatInt(timestamp, 10)
	if encoded := params.Encode(); encoded != "" {
		payload = encoded + "&" + payload
	}

	return path + "?" + payload + "&signature=" + Sign(payload, b.creds.SecretKey()), nil
}
