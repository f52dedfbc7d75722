package textstyle

import (
	"testing"

	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/option"
	"github.com/npillmayer/ctext/engine/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropsFromStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.style")
	defer teardown()
	//
	p, err := PropsFromStyle(style.PropertyMap{
		"font-family": "body",
		"font-size":   "4xl",
		"bold":        "",
		"italic":      "false",
	})
	require.NoError(t, err)
	assert.Equal(t, option.SomeString("body"), p.FontFamily)
	assert.Equal(t, option.SomeString("4xl"), p.FontSize)
	assert.True(t, p.FontWeight.IsNone())
	assert.Equal(t, option.True, p.Bold)
	assert.Equal(t, option.False, p.Italic)
	assert.True(t, p.Underline.IsNone())
	//
	_, err = PropsFromStyle(style.PropertyMap{"underline": "maybe"})
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestPropsTextDecoration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.style")
	defer teardown()
	//
	p, err := PropsFromStyle(style.PropertyMap{"text-decoration": "underline line-through"})
	require.NoError(t, err)
	assert.Equal(t, option.True, p.Underline)
	assert.Equal(t, option.True, p.StrikeThrough)
	p, err = PropsFromStyle(style.PropertyMap{"text-decoration": "none", "underline": "true"})
	require.NoError(t, err)
	assert.Equal(t, option.True, p.Underline)
	assert.Equal(t, option.False, p.StrikeThrough)
	_, err = PropsFromStyle(style.PropertyMap{"text-decoration": "overline"})
	assert.Equal(t, core.EINVALID, core.Code(err))
}
