package theme

import (
	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/dimen"
	"github.com/npillmayer/ctext/core/font"
)

// BaseStyle is the style text is set in if neither a node nor any of its
// ancestors says otherwise. Values are written the same way as in text
// properties, i.e. they may be theme tokens.
type BaseStyle struct {
	FontFamily    string `yaml:"fontFamily,omitempty" toml:"fontFamily,omitempty"`
	FontWeight    string `yaml:"fontWeight,omitempty" toml:"fontWeight,omitempty"`
	FontStyle     string `yaml:"fontStyle,omitempty" toml:"fontStyle,omitempty" validate:"omitempty,oneof=normal italic"`
	FontSize      string `yaml:"fontSize,omitempty" toml:"fontSize,omitempty"`
	Color         string `yaml:"color,omitempty" toml:"color,omitempty"`
	LineHeight    string `yaml:"lineHeight,omitempty" toml:"lineHeight,omitempty"`
	LetterSpacing string `yaml:"letterSpacing,omitempty" toml:"letterSpacing,omitempty"`
}

// Theme is a read-only set of design tokens.
//
// LineHeights and LetterSpacings map tokens to dimension strings, which may
// be relative to the font size ("1.5em", "-0.05em", "120%") or absolute
// ("24", "2px"). Colors are kept flat, with dotted paths as keys
// ("blue.200"). Fonts maps aliases to family names; any alias value other
// than a string is unsupported.
type Theme struct {
	FontSizes      map[string]float64 `yaml:"fontSizes,omitempty" toml:"fontSizes,omitempty" validate:"dive,gt=0,max=32767"`
	LineHeights    map[string]string  `yaml:"lineHeights,omitempty" toml:"lineHeights,omitempty" validate:"dive,dimension"`
	LetterSpacings map[string]string  `yaml:"letterSpacings,omitempty" toml:"letterSpacings,omitempty" validate:"dive,dimension"`
	FontWeights    map[string]int     `yaml:"fontWeights,omitempty" toml:"fontWeights,omitempty" validate:"dive,min=1,max=1000"`
	Fonts          map[string]any     `yaml:"fonts,omitempty" toml:"fonts,omitempty"`
	FontConfig     font.Table         `yaml:"fontConfig,omitempty" toml:"-" validate:"facetable"`
	Colors         map[string]string  `yaml:"colors,omitempty" toml:"colors,omitempty" validate:"dive,color"`
	BaseStyle      BaseStyle          `yaml:"baseStyle,omitempty" toml:"baseStyle,omitempty"`
}

// FontSize looks up a font size token. Unknown tokens result in an error
// of code EMISSING, sizes out of range in an error of code EINVALID.
func (th *Theme) FontSize(token string) (dimen.Dimen, error) {
	if th == nil {
		return 0, core.Error(core.EMISSING, "no theme to look up font size %q", token)
	}
	x, ok := th.FontSizes[token]
	if !ok {
		return 0, core.Error(core.EMISSING, "font size %q not found in theme", token)
	}
	d, err := dimen.FromDP(x)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "font size %q", token)
	}
	return d, nil
}

// LineHeight looks up a line height token and returns its dimension string.
func (th *Theme) LineHeight(token string) (string, bool) {
	if th == nil {
		return "", false
	}
	lh, ok := th.LineHeights[token]
	return lh, ok
}

// LetterSpacing looks up a letter spacing token and returns its dimension string.
func (th *Theme) LetterSpacing(token string) (string, bool) {
	if th == nil {
		return "", false
	}
	ls, ok := th.LetterSpacings[token]
	return ls, ok
}

// FontWeight looks up a font weight token.
func (th *Theme) FontWeight(token string) (font.Weight, bool) {
	if th == nil {
		return 0, false
	}
	w, ok := th.FontWeights[token]
	return font.Weight(w), ok
}

// Color looks up a color path, e.g. "blue.200" or "white".
func (th *Theme) Color(path string) (string, bool) {
	if th == nil {
		return "", false
	}
	c, ok := th.Colors[path]
	return c, ok
}

// Alias resolves a font alias. Names which are not an alias are returned
// unchanged. An alias which maps to anything other than a plain family
// name results in an error with code EUNSUPPORTED.
func (th *Theme) Alias(name string) (string, error) {
	if th == nil {
		return name, nil
	}
	target, ok := th.Fonts[name]
	if !ok {
		return name, nil
	}
	family, ok := target.(string)
	if !ok {
		return "", core.Error(core.EUNSUPPORTED,
			"font alias %q maps to %T, only family names are supported", name, target)
	}
	tracer().Debugf("font alias %s -> %s", name, family)
	return family, nil
}

// Face looks up the platform font name for a family in a given weight and
// style. It returns false if the family has no registered faces.
func (th *Theme) Face(family string, w font.Weight, s font.Style) (string, bool) {
	if th == nil {
		return "", false
	}
	return th.FontConfig.Lookup(family, w, s)
}

// Clone returns a deep copy of th. Alias values are copied shallowly.
func (th *Theme) Clone() *Theme {
	c := &Theme{
		FontSizes:      make(map[string]float64, len(th.FontSizes)),
		LineHeights:    cloneStrings(th.LineHeights),
		LetterSpacings: cloneStrings(th.LetterSpacings),
		FontWeights:    make(map[string]int, len(th.FontWeights)),
		Fonts:          make(map[string]any, len(th.Fonts)),
		FontConfig:     th.FontConfig.Clone(),
		Colors:         cloneStrings(th.Colors),
		BaseStyle:      th.BaseStyle,
	}
	for k, v := range th.FontSizes {
		c.FontSizes[k] = v
	}
	for k, v := range th.FontWeights {
		c.FontWeights[k] = v
	}
	for k, v := range th.Fonts {
		c.Fonts[k] = v
	}
	return c
}

func cloneStrings(m map[string]string) map[string]string {
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
