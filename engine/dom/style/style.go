/*
Package style holds style properties of text nodes, as written by clients.

Properties are kept as un-interpreted strings, the way they are written in
markup attributes or in inline CSS declarations. Interpretation of property
values is left to the style resolver, which knows about theme tokens.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"sort"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctext.style'.
func tracer() tracing.Trace {
	return tracing.Select("ctext.style")
}

// Property is a raw value for a style property, e.g. "4xl" or "0.1em".
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty returns true if p is the null style.
func (p Property) IsEmpty() bool {
	return p == NullStyle
}

// PropertyMap is a set of style properties, keyed by property name
// (e.g. "font-size").
type PropertyMap map[string]Property

// GetProperty returns the property for a key, or NullStyle.
func (pmap PropertyMap) GetProperty(key string) Property {
	if pmap == nil {
		return NullStyle
	}
	return pmap[key]
}

// Keys returns the property keys of pmap in alphabetical order.
func (pmap PropertyMap) Keys() []string {
	keys := make([]string, 0, len(pmap))
	for k := range pmap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseInlineStyle parses a list of CSS declarations, as found in an inline
// style attribute:
//
//	font-size: 4xl; font-family: body; color: blue.200
//
// Property names are lower-cased. For properties declared more than once,
// the last declaration wins, unless an earlier one is marked `!important`.
func ParseInlineStyle(decls string) (PropertyMap, error) {
	pmap := make(PropertyMap)
	if strings.TrimSpace(decls) == "" {
		return pmap, nil
	}
	declarations, err := parser.ParseDeclarations(decls)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse style declarations %q", decls)
	}
	important := make(map[string]bool)
	for _, d := range declarations {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		if important[key] && !d.Important {
			continue
		}
		tracer().Debugf("style property %s = %s", key, d.Value)
		pmap[key] = Property(strings.TrimSpace(d.Value))
		important[key] = d.Important
	}
	return pmap, nil
}
