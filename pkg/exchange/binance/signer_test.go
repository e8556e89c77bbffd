package binance

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bnrest/pkg/core"
)

var (
	testAPIKey    = strings.Repeat("a", core.KeyLength)
	testSecretKey = strings.Repeat("b", core.KeyLength)
)

func newTestCredentials(t *testing.T) core.Credentials {
	t.Helper()
	creds, err := core.NewCredentials(testAPIKey, testSecretKey)
	require.NoError(t, err)
	return creds
}

func TestSign(t *testing.T) {
	// RFC 4231 test case 2.
	got := Sign("what do ya want for nothing?", "Jefe")
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}

func TestQueryBuilder_BuildAt(t *testing.T) {
	b := NewQueryBuilder(newTestCredentials(t), 0)
	args := core.NewArgs().
		Set("symbol", "BNBBTC").
		Set("side", "BUY").
		Set("type", "LIMIT").
		Set("timeInForce", "GTC").
		Set("quantity", "1").
		Set("price", "0.1")

	got, err := b.BuildAt("api/v3/order", args, 1000000)
	require.NoError(t, err)

	payload := "symbol=BNBBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&timestamp=1000000"
	assert.Equal(t, "api/v3/order?"+payload+"&signature="+Sign(payload, testSecretKey), got)
}

func TestQueryBuilder_Deterministic(t *testing.T) {
	b := NewQueryBuilder(newTestCredentials(t), 0)
	args := core.NewArgs().Set("symbol", "BNBBTC").Set("orderId", int64(42))

	first, err := b.BuildAt("api/v3/order", args, 1700000000000)
	require.NoError(t, err)
	second, err := b.BuildAt("api/v3/order", args, 1700000000000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQueryBuilder_NoParams(t *testing.T) {
	b := NewQueryBuilder(newTestCredentials(t), 0)

	got, err := b.BuildAt("api/v3/account", core.NewArgs(), 1000)
	require.NoError(t, err)

	assert.Equal(t, "api/v3/account?timestamp=1000&signature="+Sign("timestamp=1000", testSecretKey), got)
}

func TestQueryBuilder_DropsCallerTimestamp(t *testing.T) {
	b := NewQueryBuilder(newTestCredentials(t), 0)
	args := core.NewArgs().
		Set("timestamp", int64(1)).
		Set("symbol", "BNBBTC")

	got, err := b.BuildAt("api/v3/openOrders", args, 5000)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "api/v3/openOrders?symbol=BNBBTC&timestamp=5000&signature="))
	assert.Equal(t, 1, strings.Count(got, "timestamp="))
	assert.True(t, args.Has("timestamp"), "caller args must not be modified")
	assert.Equal(t, []string{"timestamp", "symbol"}, args.Keys())
}

func TestQueryBuilder_RecvWindow(t *testing.T) {
	b := NewQueryBuilder(newTestCredentials(t), 5*time.Second)
	args := core.NewArgs().Set("symbol", "BNBBTC")

	got, err := b.BuildAt("api/v3/openOrders", args, 1000)
	require.NoError(t, err)

	payload := "symbol=BNBBTC&recvWindow=5000&timestamp=1000"
	assert.Equal(t, "api/v3/openOrders?"+payload+"&signature="+Sign(payload, testSecretKey), got)
	assert.False(t, args.Has("recvWindow"))
}

func TestQueryBuilder_SubMillisecondRecvWindow(t *testing.T) {
	b := NewQueryBuilder(newTestCredentials(t), 500*time.Microsecond)

	got, err := b.BuildAt("api/v3/account", core.NewArgs(), 1000000)
	require.NoError(t, err)

	assert.NotContains(t, got, "recvWindow")
	assert.Equal(t, "api/v3/account?timestamp=1000000&signature="+Sign("timestamp=1000000", testSecretKey), got)
}

func TestQueryBuilder_EscapesValues(t *testing.T) {
	b := NewQueryBuilder(newTestCredentials(t), 0)
	args := core.NewArgs().Set("newClientOrderId", "a b&c")

	got, err := b.BuildAt("api/v3/order", args, 1)
	require.NoError(t, err)

	assert.Contains(t, got, "newClientOrderId=a+b%26c&timestamp=1")
}

func TestQueryBuilder_Build_UsesClock(t *testing.T) {
	b := NewQueryBuilder(newTestCredentials(t), 0).
		withClock(func() time.Time { return time.UnixMilli(123456) })

	got, err := b.Build("api/v3/account", core.NewArgs())
	require.NoError(t, err)

	assert.Contains(t, got, "?timestamp=123456&signature=")
}

func TestQueryBuilder_Errors(t *testing.T) {
	apiOnly, err := core.NewCredentials(testAPIKey, "")
	require.NoError(t, err)

	tests := []struct {
		name  string
		creds core.Credentials
		path  string
		args  *core.Args
		want  error
	}{
		{"no credentials", core.Credentials{}, "api/v3/account", core.NewArgs(), core.ErrCredentialsRequired},
		{"no secret", apiOnly, "api/v3/account", core.NewArgs(), core.ErrCredentialsRequired},
		{"empty path", newTestCredentials(t), "", core.NewArgs(), core.ErrInvalidArgument},
		{"nil args", newTestCredentials(t), "api/v3/account", nil, core.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewQueryBuilder(tt.creds, 0).BuildAt(tt.path, tt.args, 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, got)
		})
	}
}
