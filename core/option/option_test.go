package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/ctext/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOptionMaybe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.core")
	defer teardown()
	//
	var y1, y2, y3 interface{}
	x := option.SomeString("4xl")
	t.Logf("x = %v, x.T = %T, x.unwrap = %v", x, x, x.Unwrap())
	y1, _ = x.Match(option.Maybe{
		option.None: "md",
		option.Some: x.Unwrap() + "!",
	})
	//
	x = option.String()
	y2, _ = x.Match(option.Maybe{
		option.None: "No Value",
		option.Some: stringify,
	})
	//
	x = option.SomeString("bold")
	y3, _ = x.Match(option.Maybe{
		option.None:  "No Value",
		option.Some:  nonsense,
		option.Error: stringify,
	})
	//
	t.Logf("y1 = %v, y2 = %v, y3 = %v", y1, y2, y3)
	if y1.(string) != "4xl!" {
		t.Errorf("expected Some(4xl) to match to 4xl!, is %v", y1)
	}
	if y2.(string) != "No Value" {
		t.Errorf("expected unset string to match to No Value, is %v", y2)
	}
	if y3 != `Value = "bold"` {
		t.Errorf("expected Some(bold) to match to Value = \"bold\", is %v", y3)
	}
}

func TestOptionOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.core")
	defer teardown()
	//
	b := option.SomeBool(true)
	y, err := b.Match(option.Of{
		option.None: "inherit",
		true:        "underline",
		false:       "none",
	})
	if err != nil || y.(string) != "underline" {
		t.Errorf("expected true to match to underline, is %v (err=%v)", y, err)
	}
	y, _ = option.Bool().Match(option.Of{
		option.None: "inherit",
		true:        "underline",
	})
	if y.(string) != "inherit" {
		t.Errorf("expected unset bool to match to inherit, is %v", y)
	}
}

func TestOptionFail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.core")
	defer teardown()
	//
	x := option.SomeString("oblique")
	_, err := x.Match(option.Of{
		option.None:  "normal",
		"oblique":    option.Fail(errors.New("Fail")),
		option.Some:  x.Unwrap(),
		option.Error: option.Fail(errors.New("Caught Fail")),
	})
	//
	t.Logf("err = %v", err)
	if err == nil {
		t.Fatalf("expected Some(oblique) to match to an error, hasn't")
	}
	if err.Error() != "Caught Fail" {
		t.Errorf("expected Some(oblique) error to be caught, isn't")
	}
}

func TestBoolTriState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.core")
	defer teardown()
	//
	if !option.Bool().IsNone() {
		t.Errorf("expected Bool() to be unset")
	}
	if option.False.IsNone() || option.False.Unwrap() {
		t.Errorf("expected False to be set and false")
	}
	if option.Bool().Or(option.True) != option.True {
		t.Errorf("expected unset.Or(true) to be true")
	}
	if option.False.Or(option.True) != option.False {
		t.Errorf("expected false.Or(true) to stay false")
	}
	if option.BoolT(7).IsValid() {
		t.Errorf("expected BoolT(7) to be invalid")
	}
}

func TestFloat64None(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.core")
	defer teardown()
	//
	if !option.Float64().IsNone() {
		t.Errorf("expected Float64() to be unset")
	}
	zero := option.SomeFloat64(0)
	if zero.IsNone() || !zero.Equals(0) {
		t.Errorf("expected explicit 0 to be set and equal to 0")
	}
	if option.Float64().String() != "Float64.None" {
		t.Errorf("unexpected string for unset float: %s", option.Float64())
	}
}

// ---------------------------------------------------------------------------

func nonsense(x interface{}) (interface{}, error) {
	return nil, errors.New("ERROR")
}

func stringify(x interface{}) (interface{}, error) {
	return fmt.Sprintf("Value = %v", x), nil
}
