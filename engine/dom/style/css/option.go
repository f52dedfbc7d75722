package css

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/dimen"
	"github.com/npillmayer/ctext/core/option"
	"github.com/npillmayer/ctext/engine/dom/style"
)

// PropertyType is a helper type for special kinds of dimensions.
type PropertyType int

// FontScaled is a constant value for options-matching.
// Use with
//
//	option.Of{
//	     css.FontScaled: …   // will match a DimenT with value "1.5em" or "80%"
//	}
const (
	FontScaled PropertyType = 4 // for option matching: dimension is font-dependent
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001

	dimenEM      uint32 = 0x0100
	dimenPRCNT   uint32 = 0x0900
	relativeMask uint32 = 0x0f00
)

// --- DimenT-----------------------------------------------------------------

// DimenT is an option type for dimensions of text styles. A dimension is
// either absolute (DP) or relative to the font size of the text it applies
// to (em, %). For relative dimensions, the dimension value holds the scaling
// factor, in scaled DP (i.e., 1em is stored as 1dp).
type DimenT struct {
	d     dimen.Dimen
	flags uint32
}

// SomeDimen creates an optional dimen with an initial value of x.
func SomeDimen(x dimen.Dimen) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Dimen creates an optional dimen without an initial value.
func Dimen() DimenT {
	return DimenT{d: 0, flags: dimenNone}
}

// Match is part of interface option.Type.
func (o DimenT) Match(choices interface{}) (value interface{}, err error) {
	return option.Match(o, choices)
}

// Equals is part of interface option.Type.
func (o DimenT) Equals(other interface{}) bool {
	switch i := other.(type) {
	case DimenT:
		return o.d == i.d && o.flags == i.flags
	case dimen.Dimen:
		return o.IsAbsolute() && o.Unwrap() == i
	case int:
		return o.IsAbsolute() && o.Unwrap() == dimen.Dimen(i)
	case PropertyType:
		switch i {
		case FontScaled:
			return o.IsRelative()
		}
	case string:
		switch i {
		case "%":
			return o.flags&relativeMask == dimenPRCNT
		case "em":
			return o.flags&relativeMask == dimenEM
		}
	}
	return false
}

// Unwrap returns the underlying dimension of o.
func (o DimenT) Unwrap() dimen.Dimen {
	return o.d
}

// IsNone returns true if o is unset.
func (o DimenT) IsNone() bool {
	return o.flags == dimenNone
}

// IsRelative returns true if o represents a valid relative dimension (`%`, `em`).
func (o DimenT) IsRelative() bool {
	return o.flags&relativeMask > 0
}

// IsAbsolute returns true if o represents a valid absolute dimension.
func (o DimenT) IsAbsolute() bool {
	return o.flags == dimenAbsolute
}

// ScaledBy resolves o against a font size. Relative dimensions are
// multiplied by fontSize, absolute dimensions are returned unchanged.
// Unset dimensions resolve to zero. A product which does not fit into a
// dimension results in an error of code EINVALID.
func (o DimenT) ScaledBy(fontSize dimen.Dimen) (dimen.Dimen, error) {
	if o.IsRelative() {
		return fontSize.Scale(o.d.DP())
	}
	return o.d, nil
}

func (o DimenT) String() string {
	if o.IsNone() {
		return "DimenT.None"
	}
	if o.IsRelative() {
		factor := o.d.DP()
		if unit, ok := relUnitMap[o.flags&relativeMask]; ok {
			if unit == "%" {
				factor *= 100
			}
			return strconv.FormatFloat(factor, 'f', -1, 64) + unit
		}
	}
	return o.d.String()
}

var relUnitMap map[uint32]string = map[uint32]string{
	dimenEM:    "em",
	dimenPRCNT: "%",
}

var relUnitStringMap map[string]uint32 = map[string]uint32{
	"em": dimenEM,
	"%":  dimenPRCNT,
}

// DimenOption returns an optional dimension type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset dimension.
func DimenOption(p style.Property) DimenT {
	if p == style.NullStyle {
		return Dimen()
	}
	d, err := ParseDimen(string(p))
	if err != nil {
		return Dimen()
	}
	return d
}

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(%|[a-zA-Z]{2})?$`)

// ParseDimen parses a string to return an optional dimension.
// Valid dimensions are
//
//	15px
//	16
//	-0.05em
//	150%
func ParseDimen(s string) (DimenT, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return Dimen(), core.Error(core.EINVALID, "format error parsing dimension %q", s)
	}
	dim := DimenT{flags: dimenAbsolute}
	if len(d) > 2 && d[2] != "" {
		if unit, ok := relUnitStringMap[d[2]]; ok {
			dim.flags = unit
		} else if _, err := dimen.ParseDimen("0" + d[2]); err != nil {
			return Dimen(), core.Error(core.EINVALID, "unknown unit in dimension %q", s)
		}
	}
	x, err := strconv.ParseFloat(d[1], 64)
	if err != nil { // this cannot happen
		return Dimen(), core.Error(core.EINVALID, "format error parsing dimension %q", s)
	}
	if dim.flags == dimenPRCNT {
		x /= 100
	}
	if dim.IsAbsolute() {
		dim.d, err = dimen.ParseDimen(fmt.Sprintf("%s%s", d[1], d[2]))
		if err != nil {
			return Dimen(), core.WrapError(err, core.EINVALID, "format error parsing dimension %q", s)
		}
		return dim, nil
	}
	if dim.d, err = dimen.FromDP(x); err != nil {
		return Dimen(), core.WrapError(err, core.EINVALID, "relative dimension %q out of range", s)
	}
	tracer().Debugf("parsed relative dimension %s", dim)
	return dim, nil
}
