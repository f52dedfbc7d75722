package fontregistry

import (
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/ctext/core/font"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/cases"
)

// Registry is a type for collecting font assets of an application and
// deriving a face table from them.
//
// Faces are grouped by family and weight, with "normal" and "italic"
// sub-entries. Weights are kept in ascending order.
type Registry struct {
	sync.Mutex
	families map[string]*treemap.Map // family -> weight -> font.Faces
	fonts    map[string]*font.ScalableFont
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	fr := &Registry{
		families: make(map[string]*treemap.Map),
		fonts:    make(map[string]*font.ScalableFont),
	}
	return fr
}

// RegisterKey parses a font key and registers it as a face.
func (fr *Registry) RegisterKey(key string) (font.Descriptor, error) {
	d, err := font.ParseKey(key)
	if err != nil {
		return d, err
	}
	fr.Register(d)
	return d, nil
}

// Register adds a face to the registry.
//
// If a face is already registered for the descriptor's family, weight and
// style, it is replaced: the key registered last wins.
func (fr *Registry) Register(d font.Descriptor) {
	fr.Lock()
	defer fr.Unlock()
	weights, ok := fr.families[d.Family]
	if !ok {
		weights = treemap.NewWith(utils.IntComparator)
		fr.families[d.Family] = weights
	}
	var faces font.Faces
	if f, found := weights.Get(int(d.Weight)); found {
		faces = f.(font.Faces)
	}
	slot := &faces.Normal
	if d.Italic {
		slot = &faces.Italic
	}
	if *slot != "" && *slot != d.Key {
		tracer().Infof("registry replaces face %s by %s", *slot, d.Key)
	}
	*slot = d.Key
	tracer().Debugf("registry stores face %s for %s/%d/%s", d.Key, d.Family, d.Weight, d.Style())
	weights.Put(int(d.Weight), faces)
}

// StoreFont pushes a loaded font asset into the registry if it isn't
// contained yet, and registers the key as a face.
func (fr *Registry) StoreFont(d font.Descriptor, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	if _, ok := fr.fonts[d.Key]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, d.Key)
		fr.fonts[d.Key] = f
	}
	fr.Unlock()
	fr.Register(d)
}

// Font returns the font asset stored for a key, if any.
func (fr *Registry) Font(key string) (*font.ScalableFont, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[key]
	return f, ok
}

// Table derives a face table from the registered faces.
//
// A weight registered with an italic face only has no normal face; the
// italic face is then used for both styles, as a face table requires a
// normal face for every weight.
func (fr *Registry) Table() font.Table {
	fr.Lock()
	defer fr.Unlock()
	table := make(font.Table, len(fr.families))
	for family, weights := range fr.families {
		fam := make(font.FamilyTable, weights.Size())
		it := weights.Iterator()
		for it.Next() {
			faces := it.Value().(font.Faces)
			if faces.Normal == "" {
				faces.Normal = faces.Italic
			}
			fam[font.Weight(it.Key().(int))] = faces
		}
		if _, ok := fam[font.WeightNormal]; !ok {
			tracer().Errorf("family %s has no face for weight 400", family)
		}
		table[family] = fam
	}
	return table
}

// LogFontList is a helper function to dump the list of known faces
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered faces ---")
	for _, line := range fr.fontList() {
		tracer().Infof("%s", line)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// fontList lists faces ordered by family and weight, followed by the
// stored font assets ordered by key.
func (fr *Registry) fontList() []string {
	fr.Lock()
	defer fr.Unlock()
	var list []string
	for _, family := range slices.Sorted(maps.Keys(fr.families)) {
		it := fr.families[family].Iterator()
		for it.Next() {
			faces := it.Value().(font.Faces)
			list = append(list, fmt.Sprintf("face [%s/%d] = %s | %s", family, it.Key(), faces.Normal, faces.Italic))
		}
	}
	for _, key := range slices.Sorted(maps.Keys(fr.fonts)) {
		list = append(list, fmt.Sprintf("font [%s] = %v", key, fr.fonts[key].Fontname))
	}
	return list
}

// FromKeys builds a face table from a list of font keys.
func FromKeys(keys []string) (font.Table, error) {
	fr := NewRegistry()
	for _, key := range keys {
		if _, err := fr.RegisterKey(key); err != nil {
			return nil, err
		}
	}
	return fr.Table(), nil
}

// NormalizeFontname folds a font name or font file name for comparison:
// directory and file extension are stripped, spaces become underscores and
// letters are case-folded.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(path.Base(fname))
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return cases.Fold().String(fname)
}
