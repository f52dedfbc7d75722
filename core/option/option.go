package option

import (
	"errors"
	"math"
	"strconv"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]interface{}

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// then try a Maybe match.
type Of map[interface{}]interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match will do a standard matching of o against choices.
//
// choices are expected to be a map type, where keys of the map are either
// concrete values for o, or of type MaybeOption. Values of the map may be
// of any type. Values of function type will be called with o as an argument.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

func (of Of) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		if expr, ok := of[None]; ok {
			return valueOrExpr(expr, o, None)
		}
		return nil, ErrCannotMatchUnsetValue
	}
	err = ErrCannotMatchValue
	matched := false
	for k, expr := range of {
		if _, isMaybe := k.(MaybeOption); isMaybe {
			continue
		}
		if o.Equals(k) {
			matched = true
			value, err = valueOrExpr(expr, o, Some)
			break
		}
	}
	if !matched {
		if expr, ok := of[Some]; ok {
			value, err = valueOrExpr(expr, o, Some)
		}
	}
	if err != nil {
		tracer().Debugf("option match: %v", err)
		if expr, ok := of[Error]; ok {
			value, err = valueOrExpr(expr, o, Error)
		}
	}
	return value, err
}

func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	if o.IsNone() {
		if expr, ok := maybe[None]; ok {
			return valueOrExpr(expr, o, None)
		}
		return nil, ErrCannotMatchUnsetValue
	}
	if expr, ok := maybe[Some]; ok {
		value, err = valueOrExpr(expr, o, Some)
	}
	if err != nil {
		tracer().Debugf("option match: %v", err)
		if expr, ok := maybe[Error]; ok {
			value, err = valueOrExpr(expr, o, Error)
		}
	}
	return value, err
}

func valueOrExpr(op interface{}, value Type, t MaybeOption) (interface{}, error) {
	switch x := op.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		return x(value, t)
	case func(interface{}) (interface{}, error):
		return x(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//	_, err := o.Match(option.Of{
//	     option.None: …,
//	     "oblique":   option.Fail(errors.New("oblique is not supported")),
//	     option.Some: …,
//	})
func Fail(err error) func(interface{}) (interface{}, error) {
	localErr := err
	return func(interface{}) (interface{}, error) {
		return nil, localErr
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x interface{}, err error) interface{} {
	return x
}

// --- BoolT -----------------------------------------------------------------

// BoolT is a tri-state option type for booleans: unset, false or true.
// Values outside of these three are illegal and reported by IsValid.
type BoolT uint8

const (
	boolNone  BoolT = 0
	boolFalse BoolT = 1
	boolTrue  BoolT = 2
)

// Bool creates an optional bool without an initial value.
func Bool() BoolT {
	return boolNone
}

// SomeBool creates an optional bool with an initial value of b.
func SomeBool(b bool) BoolT {
	if b {
		return boolTrue
	}
	return boolFalse
}

// True and False are shortcuts for SomeBool(true) and SomeBool(false).
var (
	True  = boolTrue
	False = boolFalse
)

func (o BoolT) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

func (o BoolT) Equals(other interface{}) bool {
	switch b := other.(type) {
	case bool:
		return !o.IsNone() && o.Unwrap() == b
	case BoolT:
		return o == b
	}
	return false
}

// Unwrap returns the underlying bool. Unset values unwrap to false.
func (o BoolT) Unwrap() bool {
	return o == boolTrue
}

// IsNone returns true if o is unset.
func (o BoolT) IsNone() bool {
	return o == boolNone
}

// IsValid returns false for values outside of {unset, false, true}.
func (o BoolT) IsValid() bool {
	return o <= boolTrue
}

// Or returns o if it is set, otherwise other.
func (o BoolT) Or(other BoolT) BoolT {
	if o.IsNone() {
		return other
	}
	return o
}

func (o BoolT) String() string {
	switch o {
	case boolNone:
		return "Bool.None"
	case boolFalse:
		return "false"
	case boolTrue:
		return "true"
	}
	return "Bool.Invalid(" + strconv.Itoa(int(o)) + ")"
}

// --- StringT ---------------------------------------------------------------

// StringT is an option type for strings. The empty string is a valid value.
type StringT struct {
	s   string
	set bool
}

// String creates an optional string without an initial value.
func String() StringT {
	return StringT{}
}

// SomeString creates an optional string with an initial value of s.
func SomeString(s string) StringT {
	return StringT{s: s, set: true}
}

func (o StringT) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

func (o StringT) Equals(other interface{}) bool {
	switch s := other.(type) {
	case string:
		return o.set && o.s == s
	case StringT:
		return o == s
	}
	return false
}

// Unwrap returns the underlying string.
func (o StringT) Unwrap() string {
	return o.s
}

// IsNone returns true if o is unset.
func (o StringT) IsNone() bool {
	return !o.set
}

// Or returns o if it is set, otherwise other.
func (o StringT) Or(other StringT) StringT {
	if o.IsNone() {
		return other
	}
	return o
}

func (o StringT) String() string {
	if o.IsNone() {
		return "String.None"
	}
	return strconv.Quote(o.s)
}

// --- Float64T --------------------------------------------------------------

// Float64T is an option type for float64.
type Float64T float64

// Float64None is used as an in-band null value for optional floats.
var Float64None = math.NaN()

// Float64 creates an optional float64 without an initial value.
func Float64() Float64T {
	return Float64T(Float64None)
}

// SomeFloat64 creates an optional float64 with an initial value of x.
func SomeFloat64(x float64) Float64T {
	return Float64T(x)
}

func (o Float64T) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

func (o Float64T) Equals(other interface{}) bool {
	if o.IsNone() {
		return false
	}
	switch x := other.(type) {
	case float64:
		return float64(o) == x
	case int:
		return float64(o) == float64(x)
	case Float64T:
		return o == x
	}
	return false
}

// Unwrap returns the underlying float64.
func (o Float64T) Unwrap() float64 {
	return float64(o)
}

// IsNone returns true if o is unset.
func (o Float64T) IsNone() bool {
	return math.IsNaN(float64(o))
}

func (o Float64T) String() string {
	if o.IsNone() {
		return "Float64.None"
	}
	return strconv.FormatFloat(float64(o), 'f', -1, 64)
}

var _ Type = BoolT(0)
var _ Type = StringT{}
var _ Type = Float64T(0)
