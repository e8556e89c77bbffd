package core

import (
	"fmt"
	"iter"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/shopspring/decimal"
)

// Args is the parameter set of one API call.
// Keys keep their insertion order, which is the order they are encoded and signed in.
// Setting an existing key replaces its value in place.
type Args struct {
	keys   []string
	values map[string]any
}

// NewArgs returns an empty argument set.
func NewArgs() *Args {
	return &Args{values: make(map[string]any)}
}

// Set stores value under key and returns the args for chaining.
func (a *Args) Set(key string, value any) *Args {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
	return a
}

func (a *Args) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

func (a *Args) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Delete removes key. Missing keys are ignored.
func (a *Args) Delete(key string) {
	if _, ok := a.values[key]; !ok {
		return
	}
	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			return
		}
	}
}

func (a *Args) Len() int {
	return len(a.keys)
}

// Keys returns a copy of the keys in insertion order.
func (a *Args) Keys() []string {
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// All iterates over the entries in insertion order.
func (a *Args) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Clone returns an independent copy. Values are copied shallowly.
func (a *Args) Clone() *Args {
	c := &Args{
		keys:   make([]string, len(a.keys)),
		values: make(map[string]any, len(a.values)),
	}
	copy(c.keys, a.keys)
	for k, v := range a.values {
		c.values[k] = v
	}
	return c
}

// Encode renders the args as k1=v1&k2=v2 in insertion order.
// Values are query-escaped; keys are written verbatim.
func (a *Args) Encode() string {
	var sb strings.Builder
	for i, k := range a.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(FormatValue(a.values[k])))
	}
	return sb.String()
}

// StringMap renders every value with FormatValue.
func (a *Args) StringMap() map[string]string {
	result := make(map[string]string, len(a.keys))
	for _, k := range a.keys {
		result[k] = FormatValue(a.values[k])
	}
	return result
}

// FormatValue renders a parameter value the way the API expects it.
// Floats and decimals are written in plain notation, never with an exponent.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case apd.Decimal:
		return val.Text('f')
	case *apd.Decimal:
		if val == nil {
			return ""
		}
		return val.Text('f')
	case decimal.Decimal:
		return val.String()
	case fmt.Stringer:
		if rv := reflect.ValueOf(val); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return ""
		}
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
