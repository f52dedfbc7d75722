package resources

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/font"
	"github.com/npillmayer/ctext/core/font/fontregistry"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func TestResolvePackagedFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.resources")
	defer teardown()
	//
	fr := fontregistry.NewRegistry()
	promise := ResolveFonts(fr, Sources{
		"Go_400Regular":        {Data: goregular.TTF},
		"Go_700Bold":           {Data: gobold.TTF},
		"Go_400Regular_Italic": {Data: goitalic.TTF},
	})
	select {
	case <-promise.Ready():
	case <-time.After(5 * time.Second):
		t.Fatalf("font registration did not finish")
	}
	table, err := promise.Await(context.Background())
	require.NoError(t, err)
	name, ok := table.Lookup("Go", font.WeightNormal, font.StyleItalic)
	assert.True(t, ok)
	assert.Equal(t, "Go_400Regular_Italic", name)
	_, ok = fr.Font("Go_700Bold")
	assert.True(t, ok, "expected loaded font asset to be stored in registry")
	//
	again, err := promise.Await(context.Background()) // never re-suspends
	require.NoError(t, err)
	assert.Equal(t, table, again)
}

func TestResolveBrokenFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.resources")
	defer teardown()
	//
	promise := ResolveFonts(nil, Sources{
		"Go_400Regular":     {Data: goregular.TTF},
		"Broken_400Regular": {Data: []byte("not a font")},
		"Nokey":             {Data: goregular.TTF},
	})
	table, err := promise.Await(context.Background())
	require.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Contains(t, table, "Go", "successfully loaded fonts must be registered")
	assert.NotContains(t, table, "Broken")
}

func TestAwaitCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.resources")
	defer teardown()
	//
	loader := &fontsLoader{done: make(chan struct{})} // never finishes
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := loader.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFSSources(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.resources")
	defer teardown()
	//
	fsys := fstest.MapFS{
		"fonts/Go_400Regular.ttf": {Data: goregular.TTF},
		"fonts/Go_700Bold.TTF":    {Data: gobold.TTF},
		"fonts/README.md":         {Data: []byte("# fonts")},
	}
	sources, err := FSSources(fsys, "fonts")
	require.NoError(t, err)
	assert.Equal(t, []string{"Go_400Regular", "Go_700Bold"}, sources.Keys())
	//
	_, err = FSSources(fsys, "missing")
	assert.Equal(t, core.EMISSING, core.Code(err))
}
