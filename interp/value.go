// Copyright © 2020 The Pea Authors under an MIT-style license.

package interp

import (
	"fmt"
	"math"
	"strconv"
)

// A Func is the value of a declared function.
type Func func(args ...interface{}) (interface{}, error)

// A TypeError is a value that cannot be converted to the type an operator needs.
type TypeError struct {
	Value interface{}
	Want  string
}

func (err *TypeError) Error() string {
	return fmt.Sprintf("cannot convert %s (%T) to %s", Format(err.Value), err.Value, err.Want)
}

// unwrap returns the value of a symbol,
// or v itself if it is not a symbol.
func unwrap(v interface{}) interface{} {
	if sym, ok := v.(*Symbol); ok && sym != nil {
		return sym.Value
	}
	return v
}

// Number returns v converted to a number.
// Booleans are 1 or 0, null is 0, and strings are parsed.
func Number(v interface{}) (float64, error) {
	switch v := unwrap(v).(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, &TypeError{Value: v, Want: "number"}
		}
		return f, nil
	default:
		return 0, &TypeError{Value: v, Want: "number"}
	}
}

// Integer returns v converted to an integer,
// rounding numbers to the nearest integer, ties to even.
func Integer(v interface{}) (int64, error) {
	f, err := Number(v)
	if err != nil {
		return 0, &TypeError{Value: unwrap(v), Want: "integer"}
	}
	f = math.RoundToEven(f)
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, &TypeError{Value: unwrap(v), Want: "integer"}
	}
	return int64(f), nil
}

// Bool returns v converted to a boolean.
// Numbers are true if non-zero, null is false, and strings are parsed.
func Bool(v interface{}) (bool, error) {
	switch v := unwrap(v).(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, &TypeError{Value: v, Want: "boolean"}
		}
		return b, nil
	default:
		return false, &TypeError{Value: v, Want: "boolean"}
	}
}

// Format returns a string of a value.
func Format(v interface{}) string {
	switch v := unwrap(v).(type) {
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	case Func:
		return "func"
	default:
		return fmt.Sprint(v)
	}
}
