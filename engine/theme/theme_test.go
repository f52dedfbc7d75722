package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/dimen"
	"github.com/npillmayer/ctext/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const playfairYAML = `
fonts:
  body: PlayfairDisplay
  heading:
    normal: PlayfairDisplay_900Black
fontSizes:
  tiny: 8
letterSpacings:
  "5xl": "1em"
fontConfig:
  PlayfairDisplay:
    400:
      normal: PlayfairDisplay_400Regular
      italic: PlayfairDisplay_400Regular_Italic
    700:
      normal: PlayfairDisplay_700Bold
      italic: PlayfairDisplay_700Bold_Italic
colors:
  brand:
    100: "#ffe4e6"
    500: "#f43f5e"
  accent: "#0ea5e9"
baseStyle:
  fontFamily: body
`

const playfairTOML = `
[fonts]
body = "PlayfairDisplay"

[fontSizes]
tiny = 8.0

[fontConfig.PlayfairDisplay.400]
normal = "PlayfairDisplay_400Regular"
italic = "PlayfairDisplay_400Regular_Italic"

[colors.brand]
500 = "#f43f5e"
`

type ThemeSuite struct {
	suite.Suite
	teardown func()
}

func TestThemeSuite(t *testing.T) {
	suite.Run(t, new(ThemeSuite))
}

func (s *ThemeSuite) SetupTest() {
	s.teardown = gotestingadapter.QuickConfig(s.T(), "ctext.theme")
}

func (s *ThemeSuite) TearDownTest() {
	s.teardown()
}

func (s *ThemeSuite) TestDefaultIsValid() {
	th := Default()
	s.Require().NoError(th.Validate())
	size, err := th.FontSize("4xl")
	s.NoError(err)
	s.Equal(36*dimen.DP, size)
	_, err = th.FontSize("5xl")
	s.Equal(core.EMISSING, core.Code(err))
	w, ok := th.FontWeight("bold")
	s.True(ok)
	s.Equal(font.WeightBold, w)
	c, ok := th.Color("blue.200")
	s.True(ok)
	s.Equal("#bfdbfe", c)
	_, ok = th.Color("blue")
	s.False(ok)
}

func (s *ThemeSuite) TestDefaultIsFresh() {
	th := Default()
	th.FontSizes["md"] = 99
	s.Equal(16.0, Default().FontSizes["md"])
}

func (s *ThemeSuite) TestAlias() {
	th, err := Default().Extend(&Theme{
		Fonts: map[string]any{
			"body":    "PlayfairDisplay",
			"heading": map[string]any{"normal": "X"},
		},
	})
	s.Require().NoError(err)
	family, err := th.Alias("body")
	s.NoError(err)
	s.Equal("PlayfairDisplay", family)
	family, err = th.Alias("Helvetica")
	s.NoError(err)
	s.Equal("Helvetica", family)
	_, err = th.Alias("heading")
	s.Equal(core.EUNSUPPORTED, core.Code(err))
}

func (s *ThemeSuite) TestExtendKeepsBase() {
	base := Default()
	th, err := base.Extend(&Theme{
		FontSizes:      map[string]float64{"md": 17, "tiny": 8},
		LetterSpacings: map[string]string{"5xl": "1em"},
	})
	s.Require().NoError(err)
	s.Equal(17.0, th.FontSizes["md"])
	s.Equal(8.0, th.FontSizes["tiny"])
	s.Equal(36.0, th.FontSizes["4xl"])
	s.Equal("1em", th.LetterSpacings["5xl"])
	s.Equal(16.0, base.FontSizes["md"], "base theme must not be modified")
	_, ok := base.LetterSpacings["5xl"]
	s.False(ok)
}

func (s *ThemeSuite) TestExtendValidates() {
	_, err := Default().Extend(&Theme{
		LineHeights: map[string]string{"huge": "lots"},
	})
	s.Equal(core.EINVALID, core.Code(err))
	_, err = Default().Extend(&Theme{
		FontWeights: map[string]int{"ultra": 2000},
	})
	s.Equal(core.EINVALID, core.Code(err))
	_, err = Default().Extend(&Theme{
		FontSizes: map[string]float64{"giant": 40000},
	})
	s.Equal(core.EINVALID, core.Code(err), "font sizes must fit into a dimension")
	_, err = Default().Extend(&Theme{
		LetterSpacings: map[string]string{"wide": "40000px"},
	})
	s.Equal(core.EINVALID, core.Code(err))
	_, err = Default().Extend(&Theme{
		Colors: map[string]string{"brand": "#12345z"},
	})
	s.Equal(core.EINVALID, core.Code(err))
	_, err = Default().Extend(&Theme{
		FontConfig: font.Table{
			"Lato": {700: {Normal: "Lato_700Bold"}},
		},
	})
	s.Equal(core.EINVALID, core.Code(err), "families need a face for weight 400")
}

func (s *ThemeSuite) TestDecodeYAML() {
	ext, err := Decode([]byte(playfairYAML), YAML)
	s.Require().NoError(err)
	th, err := Default().Extend(ext)
	s.Require().NoError(err)
	s.Equal("#f43f5e", th.Colors["brand.500"])
	s.Equal("#0ea5e9", th.Colors["accent"])
	s.Equal("body", th.BaseStyle.FontFamily)
	s.Equal("md", th.BaseStyle.FontSize, "base style is extended, not replaced")
	face, ok := th.Face("PlayfairDisplay", 700, font.StyleItalic)
	s.True(ok)
	s.Equal("PlayfairDisplay_700Bold_Italic", face)
	_, err = th.Alias("heading")
	s.Equal(core.EUNSUPPORTED, core.Code(err))
}

func (s *ThemeSuite) TestDecodeTOML() {
	ext, err := Decode([]byte(playfairTOML), TOML)
	s.Require().NoError(err)
	th, err := Default().Extend(ext)
	s.Require().NoError(err)
	s.Equal("#f43f5e", th.Colors["brand.500"])
	face, ok := th.Face("PlayfairDisplay", 400, font.StyleItalic)
	s.True(ok)
	s.Equal("PlayfairDisplay_400Regular_Italic", face)
	size, err := th.FontSize("tiny")
	s.NoError(err)
	s.Equal(8*dimen.DP, size)
}

func (s *ThemeSuite) TestDecodeErrors() {
	_, err := Decode([]byte("fontSizes: [1, 2"), YAML)
	s.Equal(core.EINVALID, core.Code(err))
	_, err = Decode([]byte("fontConfig:\n  Lato:\n    heavy:\n      normal: Lato\n"), YAML)
	s.Equal(core.EINVALID, core.Code(err))
	_, err = Decode([]byte("colors:\n  brand: [1, 2]\n"), YAML)
	s.Equal(core.EINVALID, core.Code(err))
}

func (s *ThemeSuite) TestYAMLRoundTrip() {
	data, err := Default().YAML()
	s.Require().NoError(err)
	th, err := Decode(data, YAML)
	s.Require().NoError(err)
	s.Equal(Default().FontSizes, th.FontSizes)
	s.Equal(Default().Colors, th.Colors)
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.theme")
	defer teardown()
	//
	dir := t.TempDir()
	yamlFile := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte(playfairYAML), 0o644))
	th, err := Load(yamlFile)
	require.NoError(t, err)
	assert.Equal(t, "PlayfairDisplay", th.Fonts["body"])
	//
	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = Load(filepath.Join(dir, "theme.json"))
	assert.Equal(t, core.EUNSUPPORTED, core.Code(err))
}

func TestIsColor(t *testing.T) {
	for c, ok := range map[string]bool{
		"#1e40af":          true,
		"#fff":             true,
		"#1e40af80":        true,
		"red":              true,
		"rgba(0,0,0,0.5)":  true,
		"#xyz":             false,
		"blue.200":         false,
		"":                 false,
		"rgb(0,0,0); drop": false,
	} {
		assert.Equal(t, ok, IsColor(c), c)
	}
}

func TestCustomValidations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.theme")
	defer teardown()
	//
	v := validator.New()
	for tag, fn := range customValidations {
		assert.NoError(t, v.RegisterValidation(tag, fn), tag)
	}
	assert.Error(t, v.RegisterValidation("", customValidations["color"]), "empty tag must be rejected")
	require.NotPanics(t, func() { validatorInstance() })
	assert.NotNil(t, validatorInstance())
}
