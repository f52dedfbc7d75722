package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.font")
	defer teardown()
	//
	for k, v := range map[string]Descriptor{
		"Roboto_400Regular":              {"Roboto_400Regular", "Roboto", 400, false},
		"Roboto_700Bold_Italic":          {"Roboto_700Bold_Italic", "Roboto", 700, true},
		"PlayfairDisplay_900Black":       {"PlayfairDisplay_900Black", "PlayfairDisplay", 900, false},
		"PlayfairDisplay_500Medium_Ital": {"PlayfairDisplay_500Medium_Ital", "PlayfairDisplay", 500, true},
	} {
		d, err := ParseKey(k)
		require.NoError(t, err, k)
		assert.Equal(t, v, d, k)
	}
}

func TestParseKeyMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.font")
	defer teardown()
	//
	for _, k := range []string{"Roboto", "_400Regular", "Roboto_Bold", "Roboto_70",
		"Roboto_+40Regular", "Roboto_-40Regular", "Roboto_ 40Regular", "Roboto_000Zero"} {
		_, err := ParseKey(k)
		assert.Error(t, err, "expected key %q to be rejected", k)
	}
}

func TestTableLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.font")
	defer teardown()
	//
	table := Table{
		"PlayfairDisplay": FamilyTable{
			400: {Normal: "PlayfairDisplay_400Regular", Italic: "PlayfairDisplay_400Regular_Italic"},
			700: {Normal: "PlayfairDisplay_700Bold", Italic: "PlayfairDisplay_700Bold_Italic"},
			900: {Normal: "PlayfairDisplay_900Black"},
		},
	}
	name, ok := table.Lookup("PlayfairDisplay", WeightBold, StyleItalic)
	assert.True(t, ok)
	assert.Equal(t, "PlayfairDisplay_700Bold_Italic", name)
	//
	name, _ = table.Lookup("PlayfairDisplay", 900, StyleItalic)
	assert.Equal(t, "PlayfairDisplay_900Black", name, "italic falls back to normal face")
	//
	name, _ = table.Lookup("PlayfairDisplay", 300, StyleItalic)
	assert.Equal(t, "PlayfairDisplay_400Regular_Italic", name, "missing weight falls back to 400")
	//
	name, _ = table.Lookup("PlayfairDisplay", 0, "")
	assert.Equal(t, "PlayfairDisplay_400Regular", name)
	//
	_, ok = table.Lookup("Helvetica", WeightBold, StyleNormal)
	assert.False(t, ok)
}

func TestWeightsAndStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.font")
	defer teardown()
	//
	w, err := ParseWeight("700")
	require.NoError(t, err)
	assert.Equal(t, WeightBold, w)
	assert.Equal(t, xfont.WeightBold, w.XWeight())
	assert.Equal(t, xfont.WeightNormal, WeightNormal.XWeight())
	assert.Equal(t, xfont.WeightBlack, Weight(950).XWeight())
	_, err = ParseWeight("heavy")
	assert.Error(t, err)
	//
	s, err := ParseStyle("italic")
	require.NoError(t, err)
	assert.Equal(t, xfont.StyleItalic, s.XStyle())
	_, err = ParseStyle("oblique")
	assert.Error(t, err)
}

func TestParseOpenTypeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.font")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(goregular.TTF)
	require.NoError(t, err)
	assert.Contains(t, f.Fontname, "Go")
	_, err = ParseOpenTypeFont([]byte("no font"))
	assert.Error(t, err)
}
