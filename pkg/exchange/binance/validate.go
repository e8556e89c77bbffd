package binance

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bnrest/pkg/core"
)

// Rule checks the value of one parameter.
type Rule interface {
	Check(key string, value any) error
}

type stringRule struct{}

func (stringRule) Check(key string, value any) error {
	if _, ok := value.(string); !ok {
		return core.NewFieldError(core.ErrCodeWrongType, key, fmt.Sprintf("should be a string, got %T", value))
	}
	return nil
}

type numberRule struct{}

func (numberRule) Check(key string, value any) error {
	if !isNumber(value) {
		return core.NewFieldError(core.ErrCodeWrongType, key, fmt.Sprintf("should be a number, got %T", value))
	}
	return nil
}

type enumRule struct {
	allowed []string
	tag     string
}

func newEnumRule(allowed ...string) enumRule {
	return enumRule{allowed: allowed, tag: "oneof=" + strings.Join(allowed, " ")}
}

func (r enumRule) Check(key string, value any) error {
	var token string
	switch v := value.(type) {
	case string:
		token = v
	case fmt.Stringer:
		if isNilPointer(v) {
			return core.NewFieldError(core.ErrCodeInvalidEnumValue, key, fmt.Sprintf("should be one of %v, got nil %T", r.allowed, value))
		}
		token = v.String()
	default:
		return core.NewFieldError(core.ErrCodeInvalidEnumValue, key, fmt.Sprintf("should be one of %v, got %T", r.allowed, value))
	}
	if err := enumValidator.Var(token, r.tag); err != nil {
		return core.NewFieldError(core.ErrCodeInvalidEnumValue, key, fmt.Sprintf("should be one of %v, got %q", r.allowed, token))
	}
	return nil
}

// passRule accepts any value. quantity and price are sent as decimal strings
// and are not checked yet.
type passRule struct{}

func (passRule) Check(string, any) error { return nil }

var enumValidator = validator.New()

var rules = map[string]Rule{
	"symbol":            stringRule{},
	"newClientOrderId":  stringRule{},
	"origClientOrderId": stringRule{},
	"listenKey":         stringRule{},

	"side":        newEnumRule(core.SideBuy.String(), core.SideSell.String()),
	"type":        newEnumRule(core.TypeLimit.String(), core.TypeMarket.String()),
	"timeInForce": newEnumRule(core.GTC.String(), core.IOC.String()),

	"quantity": passRule{},
	"price":    passRule{},

	"orderId":    numberRule{},
	"stopPrice":  numberRule{},
	"icebergQty": numberRule{},
	"recvWindow": numberRule{},
	"fromId":     numberRule{},
}

// RuleFor returns the rule applied to key. Unknown keys have no rule.
func RuleFor(key string) (Rule, bool) {
	r, ok := rules[key]
	return r, ok
}

// Validate checks that every required field is present and non-blank, then
// checks every known key against its rule. It never modifies args.
//
// Blank means nil, empty string, numeric zero, NaN, false or a zero decimal,
// so a legitimate numeric 0 cannot satisfy a required field.
func Validate(args *core.Args, required []string) error {
	if args == nil {
		return core.NewError(core.ErrCodeInvalidArgument, "args are required")
	}
	if required == nil {
		return core.NewError(core.ErrCodeInvalidArgument, "required fields list is required")
	}

	for _, field := range required {
		v, ok := args.Get(field)
		if !ok || isBlank(v) {
			return core.NewFieldError(core.ErrCodeMissingRequiredField, field, "parameter is required for this method")
		}
	}

	for key, value := range args.All() {
		rule, ok := rules[key]
		if !ok {
			continue
		}
		if err := rule.Check(key, value); err != nil {
			return err
		}
	}
	return nil
}

func isNumber(v any) bool {
	switch v.(type) {
	case apd.Decimal, *apd.Decimal, decimal.Decimal:
		return true
	}
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isBlank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case apd.Decimal:
		return val.IsZero()
	case *apd.Decimal:
		return val == nil || val.IsZero()
	case decimal.Decimal:
		return val.IsZero()
	case float32:
		return val == 0 || math.IsNaN(float64(val))
	case float64:
		return val == 0 || math.IsNaN(val)
	case fmt.Stringer:
		if isNilPointer(val) {
			return true
		}
		return val.String() == ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	default:
		return false
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
