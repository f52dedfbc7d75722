package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/font"
	"gopkg.in/yaml.v3"
)

// Format is the file format of a theme file.
type Format int

// Supported theme file formats.
const (
	YAML Format = iota
	TOML
)

// FormatOf derives a theme file format from a file name extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return YAML, core.Error(core.EUNSUPPORTED, "unsupported theme file format: %s", path)
}

// themeFile is the layout of theme files. Differing from Theme, colors may
// be nested (blue: { 200: "#bfdbfe" }) and face tables are keyed by strings,
// as TOML does not allow numeric keys.
type themeFile struct {
	FontSizes      map[string]float64               `yaml:"fontSizes" toml:"fontSizes"`
	LineHeights    map[string]string                `yaml:"lineHeights" toml:"lineHeights"`
	LetterSpacings map[string]string                `yaml:"letterSpacings" toml:"letterSpacings"`
	FontWeights    map[string]int                   `yaml:"fontWeights" toml:"fontWeights"`
	Fonts          map[string]any                   `yaml:"fonts" toml:"fonts"`
	FontConfig     map[string]map[string]font.Faces `yaml:"fontConfig" toml:"fontConfig"`
	Colors         map[string]any                   `yaml:"colors" toml:"colors"`
	BaseStyle      BaseStyle                        `yaml:"baseStyle" toml:"baseStyle"`
}

// Decode decodes a theme from YAML or TOML data. The decoded theme contains
// only what data sets; it is neither merged with defaults nor validated.
func Decode(data []byte, format Format) (*Theme, error) {
	var tf themeFile
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot decode YAML theme")
		}
	case TOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&tf); err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot decode TOML theme")
		}
	default:
		return nil, core.Error(core.EUNSUPPORTED, "unsupported theme format %d", format)
	}
	return tf.theme()
}

func (tf themeFile) theme() (*Theme, error) {
	th := &Theme{
		FontSizes:      tf.FontSizes,
		LineHeights:    tf.LineHeights,
		LetterSpacings: tf.LetterSpacings,
		FontWeights:    tf.FontWeights,
		Fonts:          tf.Fonts,
		BaseStyle:      tf.BaseStyle,
	}
	if len(tf.FontConfig) > 0 {
		th.FontConfig = make(font.Table, len(tf.FontConfig))
		for family, weights := range tf.FontConfig {
			fam := make(font.FamilyTable, len(weights))
			for key, faces := range weights {
				w, err := font.ParseWeight(key)
				if err != nil {
					return nil, core.WrapError(err, core.EINVALID, "font family %s has illegal weight key", family)
				}
				fam[w] = faces
			}
			th.FontConfig[family] = fam
		}
	}
	if len(tf.Colors) > 0 {
		th.Colors = make(map[string]string)
		if err := flattenColors(th.Colors, "", tf.Colors); err != nil {
			return nil, err
		}
	}
	return th, nil
}

// flattenColors flattens nested color swatches into dotted paths.
func flattenColors(colors map[string]string, prefix string, nested map[string]any) error {
	keys := make([]string, 0, len(nested))
	for k := range nested {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		switch c := nested[k].(type) {
		case string:
			colors[path] = c
		case map[string]any:
			if err := flattenColors(colors, path, c); err != nil {
				return err
			}
		case map[any]any: // YAML swatches with numeric keys
			m := make(map[string]any, len(c))
			for kk, v := range c {
				m[fmt.Sprint(kk)] = v
			}
			if err := flattenColors(colors, path, m); err != nil {
				return err
			}
		default:
			return core.Error(core.EINVALID, "color %s has illegal value %v", path, c)
		}
	}
	return nil
}

// Extend derives a new theme from th, with all tokens of ext added to or
// replacing those of th. Neither th nor ext are modified. The resulting
// theme is validated.
func (th *Theme) Extend(ext *Theme) (*Theme, error) {
	merged := th.Clone()
	if ext != nil {
		if err := mergo.Merge(merged, *ext, mergo.WithOverride); err != nil {
			return nil, core.WrapError(err, core.EINTERNAL, "cannot extend theme")
		}
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("extended theme has %d font sizes, %d colors, %d font families",
		len(merged.FontSizes), len(merged.Colors), len(merged.FontConfig))
	return merged, nil
}

// Load reads a theme file and extends the default theme with it.
// The file format is derived from the file name extension.
func Load(path string) (*Theme, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read theme file %s", path)
	}
	ext, err := Decode(data, format)
	if err != nil {
		return nil, core.WrapError(err, core.Code(err), "theme file %s", path)
	}
	tracer().Infof("loaded theme from %s", path)
	return Default().Extend(ext)
}

// YAML encodes th as YAML.
func (th *Theme) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(th); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode theme")
	}
	if err := enc.Close(); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot encode theme")
	}
	return buf.Bytes(), nil
}
