package resources

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/core/font"
	"github.com/npillmayer/ctext/core/font/fontregistry"
)

// NotFound returns an application error for a missing font asset.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "font not found: %s", res)
}

// Source is a loadable font asset.
//
// If Data is set, it holds the binary font data (usually from an embedded
// file system). Otherwise, if Path is set, the font is loaded from a file.
// If neither is set, the font is searched for among the fonts installed on
// the system, by key and by family name.
type Source struct {
	Data []byte
	Path string
}

// Sources maps font keys to font sources.
// Keys follow the scheme of font.ParseKey.
type Sources map[string]Source

// Keys returns the font keys of s in alphabetical order.
func (s Sources) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var fontFileExtensions = []string{".ttf", ".otf"}

// FSSources collects the font files of a directory in a file system as font
// sources. A font file's base name, without extension, is taken as its key.
func FSSources(fsys fs.FS, dir string) (Sources, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font directory %s", dir)
	}
	sources := make(Sources)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name()))
		if !isFontFile(ext) {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "cannot read font file %s", entry.Name())
		}
		key := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		tracer().Debugf("found font file %s for key %s", entry.Name(), key)
		sources[key] = Source{Data: data}
	}
	return sources, nil
}

func isFontFile(ext string) bool {
	for _, e := range fontFileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// --- Fonts -----------------------------------------------------------------

// FontsPromise is the result of an asynchronous font registration.
//
// Ready returns a channel which is closed once registration has finished,
// successfully or not. Await blocks until then (or until ctx is done) and
// returns the face table derived from the registered fonts. Once finished,
// a promise never blocks again.
type FontsPromise interface {
	Ready() <-chan struct{}
	Await(ctx context.Context) (font.Table, error)
}

type fontsLoader struct {
	done  chan struct{}
	table font.Table
	err   error
}

func (loader *fontsLoader) Ready() <-chan struct{} {
	return loader.done
}

func (loader *fontsLoader) Await(ctx context.Context) (font.Table, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-loader.done:
		return loader.table, loader.err
	}
}

// ResolveFonts loads and parses font assets in the background and registers
// them with a registry. The returned promise delivers the face table of the
// registry after all sources have been processed.
//
// Every source is processed even if others fail; errors are collected and
// returned together with the face table of the successfully loaded fonts.
func ResolveFonts(fr *fontregistry.Registry, sources Sources) FontsPromise {
	loader := &fontsLoader{done: make(chan struct{})}
	if fr == nil {
		fr = fontregistry.NewRegistry()
	}
	go func() {
		defer close(loader.done)
		var errs []error
		for _, key := range sources.Keys() {
			d, err := font.ParseKey(key)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			f, err := loadFont(d, sources[key])
			if err != nil {
				tracer().Errorf("cannot load font %s: %v", key, err)
				errs = append(errs, err)
				continue
			}
			fr.StoreFont(d, f)
		}
		loader.table = fr.Table()
		if len(errs) > 0 {
			loader.err = core.WrapError(errors.Join(errs...), core.Code(errs[0]),
				"%d of %d fonts could not be registered", len(errs), len(sources))
		}
		tracer().Infof("registered %d font families", len(loader.table))
	}()
	return loader
}

func loadFont(d font.Descriptor, src Source) (*font.ScalableFont, error) {
	switch {
	case len(src.Data) > 0:
		tracer().Debugf("parsing font data for %s", d.Key)
		return font.ParseOpenTypeFont(src.Data)
	case src.Path != "":
		tracer().Debugf("loading font file %s for %s", src.Path, d.Key)
		return font.LoadOpenTypeFont(src.Path)
	}
	for _, name := range []string{d.Key, d.Family} {
		for _, ext := range fontFileExtensions {
			fpath, err := findfont.Find(name + ext) // try to find as system font
			if err == nil && fpath != "" {
				if fontregistry.NormalizeFontname(fpath) != fontregistry.NormalizeFontname(name) {
					continue // findfont matches fuzzily
				}
				tracer().Debugf("%s is a system font: %s", d.Key, fpath)
				return font.LoadOpenTypeFont(fpath)
			}
		}
	}
	return nil, NotFound(d.Key)
}
