/*
Package font is for font faces, weights and styles.

We will stick to the following definitions:

* A "family" is a family of fonts, such as "PlayfairDisplay". Families are
the unit text styles talk about.

* A "face" is a concrete, loadable font of a family in a certain weight and
style. Mobile platforms address faces by a platform name, for example
"PlayfairDisplay_700Bold_Italic".

* A face "table" maps a family, a numeric weight and a style to the platform
name of a face.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

----------------------------------------------------------------------

# BSD License

# Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package font

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'ctext.font'.
func tracer() tracing.Trace {
	return tracing.Select("ctext.font")
}

// --- Weights and styles ----------------------------------------------------

// Weight is a numeric font weight, as used by CSS and mobile platforms
// (100 = thin, …, 400 = normal, 700 = bold, …, 950 = extra black).
type Weight int

// Weights conventionally denoted by boolean shortcuts.
const (
	WeightNormal Weight = 400
	WeightBold   Weight = 700
)

// ParseWeight parses a numeric weight string such as "700".
func ParseWeight(s string) (Weight, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 1000 {
		return 0, core.Error(core.EINVALID, "not a numeric font weight: %q", s)
	}
	return Weight(n), nil
}

// XWeight maps w to the nearest weight class of package golang.org/x/image/font.
func (w Weight) XWeight() xfont.Weight {
	/* from https://pkg.go.dev/golang.org/x/image/font
	WeightThin       Weight = -3 // CSS font-weight value 100.
	…
	WeightNormal     Weight = +0 // CSS font-weight value 400.
	…
	WeightBlack      Weight = +5 // CSS font-weight value 900.
	*/
	cls := (int(w) + 50) / 100
	if cls < 1 {
		cls = 1
	} else if cls > 9 {
		cls = 9
	}
	return xfont.Weight(cls - 4)
}

func (w Weight) String() string {
	return strconv.Itoa(int(w))
}

// Style is a font style, either "normal" or "italic".
type Style string

// The font styles mobile platforms support.
const (
	StyleNormal Style = "normal"
	StyleItalic Style = "italic"
)

// ParseStyle checks s to be a supported font style.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case StyleNormal, StyleItalic:
		return Style(s), nil
	}
	return "", core.Error(core.EINVALID, "font style must be 'normal' or 'italic', is %q", s)
}

// XStyle maps s to the style type of package golang.org/x/image/font.
func (s Style) XStyle() xfont.Style {
	if s == StyleItalic {
		return xfont.StyleItalic
	}
	return xfont.StyleNormal
}

// --- Face tables -----------------------------------------------------------

// Faces holds the platform names of the faces for a weight of a family.
// Normal is required, Italic falls back to Normal if empty.
type Faces struct {
	Normal string `yaml:"normal" toml:"normal" validate:"required"`
	Italic string `yaml:"italic,omitempty" toml:"italic,omitempty"`
}

// FamilyTable maps numeric weights to faces.
type FamilyTable map[Weight]Faces

// Table maps family names to family tables. Every family is expected
// to contain a face for weight 400, which serves as a fallback for weights
// without faces.
type Table map[string]FamilyTable

// Lookup finds the platform name of a face for a family, weight and style.
// An unset weight (0) is taken as 400, an unset style as normal.
// If family is not contained in t, Lookup returns false.
func (t Table) Lookup(family string, w Weight, s Style) (string, bool) {
	fam, ok := t[family]
	if !ok {
		return "", false
	}
	if w == 0 {
		w = WeightNormal
	}
	faces, ok := fam[w]
	if !ok {
		tracer().Debugf("family %s has no faces for weight %d, using 400", family, w)
		if faces, ok = fam[WeightNormal]; !ok {
			tracer().Errorf("family %s has no faces for weight 400", family)
			return "", false
		}
	}
	if s == StyleItalic && faces.Italic != "" {
		return faces.Italic, true
	}
	return faces.Normal, true
}

// Families returns the family names of t in alphabetical order.
func (t Table) Families() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	c := make(Table, len(t))
	for family, fam := range t {
		cf := make(FamilyTable, len(fam))
		for w, faces := range fam {
			cf[w] = faces
		}
		c[family] = cf
	}
	return c
}

// --- Scalable fonts --------------------------------------------------------

// ScalableFont is a parsed OpenType font asset.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses the binary data of a font asset.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font data")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}
