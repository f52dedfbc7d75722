package textstyle

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ctext/core/dimen"
	"github.com/npillmayer/ctext/core/font"
	"github.com/npillmayer/ctext/core/option"
	"github.com/npillmayer/ctext/engine/dom/style"
	"github.com/npillmayer/ctext/engine/dom/style/css"
)

// DefaultFontSize is the font size of text if neither a node, nor any of its
// ancestors, nor the theme's base style set one. It is the reference size
// for relative dimensions in this case.
const DefaultFontSize = 14 * dimen.DP

// Inherited holds the resolved properties of a node, as seen by its children.
// The zero value is the context of a root node, where every property is unset.
//
// Font families are kept as written, i.e. before resolving aliases and faces.
// Dimensions are always absolute.
type Inherited struct {
	Family        option.StringT
	Weight        font.Weight // 0 = unset
	Style         font.Style  // "" = unset
	Size          css.DimenT
	Color         option.StringT
	LineHeight    css.DimenT
	LetterSpacing css.DimenT
	Underline     option.BoolT
	StrikeThrough option.BoolT
}

// Root returns the empty context to resolve the root of a tree against.
func Root() Inherited {
	return Inherited{}
}

// Decoration is a resolved text decoration line.
type Decoration string

// Decorations. An unset decoration leaves the platform default in effect.
const (
	DecorationUnset       Decoration = ""
	DecorationNone        Decoration = "none"
	DecorationUnderline   Decoration = "underline"
	DecorationLineThrough Decoration = "line-through"
	DecorationBoth        Decoration = "underline line-through"
)

// TextStyle is the resolved style of a text node, ready to be handed to a
// text rendering primitive. Unset values leave platform defaults in effect.
type TextStyle struct {
	FontFamily    string      // platform font name or system font family
	FontWeight    font.Weight // 0 = unset
	FontStyle     font.Style  // "" = unset
	FontSize      css.DimenT
	Color         string
	LineHeight    css.DimenT
	LetterSpacing css.DimenT
	Decoration    Decoration
}

// Properties returns the set properties of ts, keyed by the style property
// names of mobile platforms (fontFamily, fontSize, textDecorationLine, …).
// Dimensions are written as DP numbers.
func (ts TextStyle) Properties() style.PropertyMap {
	pmap := make(style.PropertyMap)
	set := func(key, value string) {
		if value != "" {
			pmap[key] = style.Property(value)
		}
	}
	dp := func(d css.DimenT) string {
		if d.IsNone() {
			return ""
		}
		return strings.TrimSuffix(d.Unwrap().String(), "dp")
	}
	set("fontFamily", ts.FontFamily)
	if ts.FontWeight != 0 {
		set("fontWeight", ts.FontWeight.String())
	}
	set("fontStyle", string(ts.FontStyle))
	set("fontSize", dp(ts.FontSize))
	set("color", ts.Color)
	set("lineHeight", dp(ts.LineHeight))
	set("letterSpacing", dp(ts.LetterSpacing))
	set("textDecorationLine", string(ts.Decoration))
	return pmap
}

func (ts TextStyle) String() string {
	pmap := ts.Properties()
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range pmap.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", k, pmap[k])
	}
	b.WriteByte('}')
	return b.String()
}
