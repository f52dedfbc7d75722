package textstyle

import (
	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/dimen"
	"github.com/npillmayer/ctext/core/font"
	"github.com/npillmayer/ctext/core/option"
	"github.com/npillmayer/ctext/engine/dom/style/css"
	"github.com/npillmayer/ctext/engine/theme"
)

// Resolve resolves the style of a text node from its properties, the context
// inherited from the enclosing node, and a theme. It returns the context for
// the node's children and the resolved style of the node.
//
// th may be nil, in which case no tokens are known. Errors are
//
//   - EINVALID for malformed property values: unknown size tokens, non-numeric
//     weights, styles other than normal and italic, malformed dimensions
//   - EUNSUPPORTED if the font family is an alias for something other than a
//     family name
//   - EINTERNAL if decoration flags are out of range
func Resolve(props Props, parent Inherited, th *theme.Theme) (Inherited, TextStyle, error) {
	r := resolver{props: props, parent: parent, base: baseProps(th), theme: th}
	ctx, ts, err := r.resolve()
	if err != nil {
		tracer().Errorf("cannot resolve text style: %v", err)
		return Inherited{}, TextStyle{}, err
	}
	tracer().Debugf("resolved text style %s", ts)
	return ctx, ts, nil
}

type resolver struct {
	props  Props
	parent Inherited
	base   Props
	theme  *theme.Theme
}

func (r resolver) resolve() (ctx Inherited, ts TextStyle, err error) {
	if ctx.Weight, err = r.weight(); err != nil {
		return
	}
	if ctx.Style, err = r.style(); err != nil {
		return
	}
	var sizeToken string
	if ctx.Size, sizeToken, err = r.size(); err != nil {
		return
	}
	fontSize := DefaultFontSize
	if !ctx.Size.IsNone() {
		fontSize = ctx.Size.Unwrap()
	}
	ctx.LineHeight, err = r.spacing(r.props.LineHeight, r.parent.LineHeight, r.base.LineHeight,
		sizeToken, r.theme.LineHeight, fontSize)
	if err != nil {
		err = core.WrapError(err, core.Code(err), "line height")
		return
	}
	ctx.LetterSpacing, err = r.spacing(r.props.LetterSpacing, r.parent.LetterSpacing, r.base.LetterSpacing,
		sizeToken, r.theme.LetterSpacing, fontSize)
	if err != nil {
		err = core.WrapError(err, core.Code(err), "letter spacing")
		return
	}
	ctx.Color = r.color()
	ctx.Family = r.props.FontFamily.Or(r.parent.Family).Or(r.base.FontFamily)
	ctx.Underline = r.props.Underline.Or(r.parent.Underline)
	ctx.StrikeThrough = r.props.StrikeThrough.Or(r.parent.StrikeThrough)
	//
	ts = TextStyle{
		FontWeight:    ctx.Weight,
		FontStyle:     ctx.Style,
		FontSize:      ctx.Size,
		Color:         ctx.Color.Unwrap(),
		LineHeight:    ctx.LineHeight,
		LetterSpacing: ctx.LetterSpacing,
	}
	if ts.FontFamily, err = r.family(ctx); err != nil {
		return
	}
	ts.Decoration, err = decoration(ctx.Underline, ctx.StrikeThrough)
	return
}

// --- Weight and style ------------------------------------------------------

func (r resolver) weight() (font.Weight, error) {
	switch {
	case !r.props.FontWeight.IsNone():
		return r.weightValue(r.props.FontWeight.Unwrap())
	case !r.props.Bold.IsNone():
		if r.props.Bold.Unwrap() {
			return r.namedWeight("bold", font.WeightBold), nil
		}
		return r.namedWeight("normal", font.WeightNormal), nil
	case r.parent.Weight != 0:
		return r.parent.Weight, nil
	case !r.base.FontWeight.IsNone():
		return r.weightValue(r.base.FontWeight.Unwrap())
	}
	return 0, nil
}

// weightValue interprets a weight token, or else a numeric weight.
func (r resolver) weightValue(v string) (font.Weight, error) {
	if w, ok := r.theme.FontWeight(v); ok {
		return w, nil
	}
	return font.ParseWeight(v)
}

func (r resolver) namedWeight(token string, fallback font.Weight) font.Weight {
	if w, ok := r.theme.FontWeight(token); ok {
		return w
	}
	return fallback
}

func (r resolver) style() (font.Style, error) {
	switch {
	case !r.props.FontStyle.IsNone():
		return font.ParseStyle(r.props.FontStyle.Unwrap())
	case !r.props.Italic.IsNone():
		if r.props.Italic.Unwrap() {
			return font.StyleItalic, nil
		}
		return font.StyleNormal, nil
	case r.parent.Style != "":
		return r.parent.Style, nil
	case !r.base.FontStyle.IsNone():
		return font.ParseStyle(r.base.FontStyle.Unwrap())
	}
	return "", nil
}

// --- Dimensions ------------------------------------------------------------

// size resolves the font size. If the size is set by a token, the token is
// returned as well, as it selects the default line height and letter spacing.
func (r resolver) size() (css.DimenT, string, error) {
	switch {
	case !r.props.FontSize.IsNone():
		return r.sizeValue(r.props.FontSize.Unwrap())
	case !r.parent.Size.IsNone():
		return r.parent.Size, "", nil
	case !r.base.FontSize.IsNone():
		return r.sizeValue(r.base.FontSize.Unwrap())
	}
	return css.Dimen(), "", nil
}

// sizeValue interprets a size token, or else a dimension. Relative
// dimensions are relative to the inherited font size.
func (r resolver) sizeValue(v string) (css.DimenT, string, error) {
	td, err := r.theme.FontSize(v)
	if err == nil {
		return css.SomeDimen(td), v, nil
	} else if core.Code(err) != core.EMISSING {
		return css.Dimen(), "", err
	}
	d, err := css.ParseDimen(v)
	if err != nil {
		return css.Dimen(), "", core.WrapError(err, core.EINVALID, "font size %q is neither a theme token nor a dimension", v)
	}
	if d.IsRelative() {
		ref := DefaultFontSize
		if !r.parent.Size.IsNone() {
			ref = r.parent.Size.Unwrap()
		}
		scaled, err := d.ScaledBy(ref)
		if err != nil {
			return css.Dimen(), "", core.WrapError(err, core.EINVALID, "font size %q", v)
		}
		return css.SomeDimen(scaled), "", nil
	}
	return d, "", nil
}

// spacing resolves line height or letter spacing. Relative values are
// relative to the resolved font size of the node.
func (r resolver) spacing(explicit option.StringT, inherited css.DimenT, base option.StringT,
	sizeToken string, table func(string) (string, bool), fontSize dimen.Dimen) (css.DimenT, error) {
	//
	if !explicit.IsNone() {
		return spacingValue(explicit.Unwrap(), table, fontSize)
	}
	if sizeToken != "" {
		if v, ok := table(sizeToken); ok {
			return spacingValue(v, nil, fontSize)
		}
	}
	if !inherited.IsNone() {
		return inherited, nil
	}
	if !base.IsNone() {
		return spacingValue(base.Unwrap(), table, fontSize)
	}
	return css.Dimen(), nil
}

func spacingValue(v string, table func(string) (string, bool), fontSize dimen.Dimen) (css.DimenT, error) {
	if table != nil {
		if tv, ok := table(v); ok {
			v = tv
		}
	}
	d, err := css.ParseDimen(v)
	if err != nil {
		return css.Dimen(), core.WrapError(err, core.EINVALID, "%q is neither a theme token nor a dimension", v)
	}
	scaled, err := d.ScaledBy(fontSize)
	if err != nil {
		return css.Dimen(), core.WrapError(err, core.EINVALID, "%q scaled by %s", v, fontSize)
	}
	return css.SomeDimen(scaled), nil
}

// --- Color and family ------------------------------------------------------

func (r resolver) color() option.StringT {
	c := r.props.Color.Or(r.parent.Color)
	if c.IsNone() {
		c = r.base.Color
	}
	if c.IsNone() {
		return c
	}
	if tc, ok := r.theme.Color(c.Unwrap()); ok {
		return option.SomeString(tc)
	}
	return c
}

// family passes the family name through the theme's font aliases, then
// looks up the face for weight and style. Families without faces are
// taken to be system fonts and are returned unchanged.
func (r resolver) family(ctx Inherited) (string, error) {
	if ctx.Family.IsNone() {
		return "", nil
	}
	family, err := r.theme.Alias(ctx.Family.Unwrap())
	if err != nil {
		return "", err
	}
	if face, ok := r.theme.Face(family, ctx.Weight, ctx.Style); ok {
		tracer().Debugf("font family %s %s %s -> %s", family, ctx.Weight, ctx.Style, face)
		return face, nil
	}
	return family, nil
}

// --- Decoration ------------------------------------------------------------

func decoration(underline, strike option.BoolT) (Decoration, error) {
	if !underline.IsValid() || !strike.IsValid() {
		return DecorationUnset, core.Error(core.EINTERNAL,
			"should not get here: decoration flags underline=%s, strike-through=%s", underline, strike)
	}
	switch {
	case underline.IsNone() && strike.IsNone():
		return DecorationUnset, nil
	case underline.Unwrap() && strike.Unwrap():
		return DecorationBoth, nil
	case underline.Unwrap():
		return DecorationUnderline, nil
	case strike.Unwrap():
		return DecorationLineThrough, nil
	}
	return DecorationNone, nil
}
