package textstyle

import (
	"strconv"
	"strings"

	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/option"
	"github.com/npillmayer/ctext/engine/dom/style"
	"github.com/npillmayer/ctext/engine/theme"
)

// Props are the style properties a text node sets explicitly. Unset
// properties are inherited.
//
// FontSize, LineHeight and LetterSpacing are either theme tokens ("4xl") or
// dimensions ("24", "12px", "1.5em", "120%"). FontWeight is either a theme
// token ("bold") or a numeric weight ("700"). Color is either a theme color
// path ("blue.200") or a color literal.
type Props struct {
	FontFamily    option.StringT
	FontWeight    option.StringT
	FontStyle     option.StringT
	FontSize      option.StringT
	Color         option.StringT
	LineHeight    option.StringT
	LetterSpacing option.StringT
	Bold          option.BoolT // shortcut for FontWeight "bold" / "normal"
	Italic        option.BoolT // shortcut for FontStyle "italic" / "normal"
	Underline     option.BoolT
	StrikeThrough option.BoolT
}

// Property keys for PropsFromStyle.
const (
	KeyFontFamily     = "font-family"
	KeyFontWeight     = "font-weight"
	KeyFontStyle      = "font-style"
	KeyFontSize       = "font-size"
	KeyColor          = "color"
	KeyLineHeight     = "line-height"
	KeyLetterSpacing  = "letter-spacing"
	KeyBold           = "bold"
	KeyItalic         = "italic"
	KeyUnderline      = "underline"
	KeyStrikeThrough  = "strike-through"
	KeyTextDecoration = "text-decoration"
)

// PropsFromStyle interprets a property map. Keys are those of CSS, plus
// boolean shortcuts "bold", "italic", "underline" and "strike-through".
// An empty value of a boolean shortcut means true. The CSS property
// "text-decoration" sets both underline and strike-through; explicit
// shortcuts override it. Unknown keys are ignored.
func PropsFromStyle(pmap style.PropertyMap) (Props, error) {
	var p Props
	strprop := func(key string) option.StringT {
		if v, ok := pmap[key]; ok {
			return option.SomeString(strings.TrimSpace(v.String()))
		}
		return option.String()
	}
	p.FontFamily = strprop(KeyFontFamily)
	p.FontWeight = strprop(KeyFontWeight)
	p.FontStyle = strprop(KeyFontStyle)
	p.FontSize = strprop(KeyFontSize)
	p.Color = strprop(KeyColor)
	p.LineHeight = strprop(KeyLineHeight)
	p.LetterSpacing = strprop(KeyLetterSpacing)
	if deco, ok := pmap[KeyTextDecoration]; ok {
		u, s, err := parseTextDecoration(deco.String())
		if err != nil {
			return p, err
		}
		p.Underline, p.StrikeThrough = u, s
	}
	for _, b := range []struct {
		key string
		opt *option.BoolT
	}{
		{KeyBold, &p.Bold},
		{KeyItalic, &p.Italic},
		{KeyUnderline, &p.Underline},
		{KeyStrikeThrough, &p.StrikeThrough},
	} {
		v, ok := pmap[b.key]
		if !ok {
			continue
		}
		flag, err := parseFlag(v.String())
		if err != nil {
			return p, core.WrapError(err, core.EINVALID, "property %s", b.key)
		}
		*b.opt = option.SomeBool(flag)
	}
	return p, nil
}

func parseFlag(v string) (bool, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return true, nil
	}
	flag, err := strconv.ParseBool(v)
	if err != nil {
		return false, core.Error(core.EINVALID, "not a boolean value: %q", v)
	}
	return flag, nil
}

func parseTextDecoration(v string) (underline, strike option.BoolT, err error) {
	underline, strike = option.False, option.False
	for _, line := range strings.Fields(v) {
		switch line {
		case "none":
		case "underline":
			underline = option.True
		case "line-through":
			strike = option.True
		default:
			return option.Bool(), option.Bool(),
				core.Error(core.EINVALID, "unsupported text decoration %q", v)
		}
	}
	return underline, strike, nil
}

// baseProps converts the base style of a theme to props.
func baseProps(th *theme.Theme) Props {
	if th == nil {
		return Props{}
	}
	bs := th.BaseStyle
	strprop := func(v string) option.StringT {
		if v == "" {
			return option.String()
		}
		return option.SomeString(v)
	}
	return Props{
		FontFamily:    strprop(bs.FontFamily),
		FontWeight:    strprop(bs.FontWeight),
		FontStyle:     strprop(bs.FontStyle),
		FontSize:      strprop(bs.FontSize),
		Color:         strprop(bs.Color),
		LineHeight:    strprop(bs.LineHeight),
		LetterSpacing: strprop(bs.LetterSpacing),
	}
}
