package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

const playfairTheme = `
fonts:
  body: PlayfairDisplay
fontConfig:
  PlayfairDisplay:
    400:
      normal: PlayfairDisplay_400Regular
      italic: PlayfairDisplay_400Regular_Italic
    700:
      normal: PlayfairDisplay_700Bold
      italic: PlayfairDisplay_700Bold_Italic
`

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.cli")
	defer teardown()
	//
	dir := t.TempDir()
	themeFile := writeFile(t, dir, "theme.yaml", playfairTheme)
	textFile := writeFile(t, dir, "text.html",
		`<t font-family="body" size="4xl">Hello <t bold><t italic>world</t></t></t>`)
	out, err := executeCommand("resolve", "--theme", themeFile, "--select", "t", textFile)
	require.NoError(t, err)
	assert.Contains(t, out, `"Hello "`)
	assert.Contains(t, out, "PlayfairDisplay_400Regular")
	assert.Contains(t, out, "PlayfairDisplay_700Bold_Italic")
	assert.Contains(t, out, "36dp")
}

func TestResolveCommandErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.cli")
	defer teardown()
	//
	dir := t.TempDir()
	_, err := executeCommand("resolve", filepath.Join(dir, "missing.html"))
	assert.Equal(t, core.EMISSING, core.Code(err))
	textFile := writeFile(t, dir, "text.html", `<t size="huge">x</t>`)
	_, err = executeCommand("resolve", textFile)
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = executeCommand("--trace", "verbose", "resolve", textFile)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestFontsCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.cli")
	defer teardown()
	//
	out, err := executeCommand("fonts", "Roboto_400Regular", "Roboto_700Bold_Italic")
	require.NoError(t, err)
	assert.Contains(t, out, "Roboto_400Regular")
	assert.Contains(t, out, "Roboto_700Bold_Italic")
	//
	_, err = executeCommand("fonts", "Roboto")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = executeCommand("fonts")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestFontsCommandDir(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.cli")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Go_400Regular.ttf"), goregular.TTF, 0o644))
	out, err := executeCommand("fonts", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Go_400Regular")
}

func TestThemeCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.cli")
	defer teardown()
	//
	out, err := executeCommand("theme")
	require.NoError(t, err)
	assert.Contains(t, out, "fontSizes:")
	assert.Contains(t, out, "4xl: 36")
	//
	dir := t.TempDir()
	themeFile := writeFile(t, dir, "theme.yaml", playfairTheme)
	out, err = executeCommand("--theme", themeFile, "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "PlayfairDisplay_700Bold_Italic")
}
