/*
Package markup reads nested text markup into a styled tree.

Markup is HTML-like. Elements nest text; their attributes set text
properties, either one by one or as CSS declarations in a style attribute:

	<t font-family="body" size="4xl">Hello <t bold>bold <t italic>world</t></t></t>
	<p style="font-size: 2xl; color: blue.200">Hello <b>world</b></p>

A bare boolean attribute (bold, italic, underline, strike-through) means true.
Declarations in a style attribute take precedence over attributes. Element
names carry no meaning, except for the HTML elements b, strong, i, em, u,
s, del and strike, which imply the corresponding boolean shortcut, and br,
which is a line break.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package markup

import (
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/engine/dom/style"
	"github.com/npillmayer/ctext/engine/dom/styledtree"
	"github.com/npillmayer/ctext/engine/textstyle"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'ctext.markup'.
func tracer() tracing.Trace {
	return tracing.Select("ctext.markup")
}

// DefaultSelector selects the whole of a markup fragment.
const DefaultSelector = "body"

// attributeKeys maps attribute names, with dashes removed, to property keys.
var attributeKeys = map[string]string{
	"fontfamily":     textstyle.KeyFontFamily,
	"family":         textstyle.KeyFontFamily,
	"fontweight":     textstyle.KeyFontWeight,
	"weight":         textstyle.KeyFontWeight,
	"fontstyle":      textstyle.KeyFontStyle,
	"fontsize":       textstyle.KeyFontSize,
	"size":           textstyle.KeyFontSize,
	"color":          textstyle.KeyColor,
	"lineheight":     textstyle.KeyLineHeight,
	"letterspacing":  textstyle.KeyLetterSpacing,
	"bold":           textstyle.KeyBold,
	"italic":         textstyle.KeyItalic,
	"underline":      textstyle.KeyUnderline,
	"strikethrough":  textstyle.KeyStrikeThrough,
	"textdecoration": textstyle.KeyTextDecoration,
}

// elementShortcuts are HTML elements which imply a text property.
var elementShortcuts = map[string]string{
	"b":      textstyle.KeyBold,
	"strong": textstyle.KeyBold,
	"i":      textstyle.KeyItalic,
	"em":     textstyle.KeyItalic,
	"u":      textstyle.KeyUnderline,
	"s":      textstyle.KeyStrikeThrough,
	"del":    textstyle.KeyStrikeThrough,
	"strike": textstyle.KeyStrikeThrough,
}

// Parse reads markup from r and builds a styled tree from the first element
// matching a CSS selector. If selector is empty, DefaultSelector is used.
// Styles of the tree are not resolved.
func Parse(r io.Reader, selector string) (*styledtree.StyNode, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid selector %q", selector)
	}
	doc, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse markup")
	}
	h := sel.MatchFirst(doc)
	if h == nil {
		return nil, core.Error(core.EMISSING, "no element matches selector %q", selector)
	}
	tracer().Debugf("selector %q matches <%s>", selector, h.Data)
	return build(h)
}

// ParseString is a shortcut for Parse with markup contained in a string.
func ParseString(markup string, selector string) (*styledtree.StyNode, error) {
	return Parse(strings.NewReader(markup), selector)
}

func build(h *html.Node) (*styledtree.StyNode, error) {
	pmap, err := Properties(h)
	if err != nil {
		return nil, err
	}
	props, err := textstyle.PropsFromStyle(pmap)
	if err != nil {
		return nil, core.WrapError(err, core.Code(err), "element <%s>: %s", h.Data, core.UserMessage(err))
	}
	sn := styledtree.NewNodeForHTMLNode(h, props)
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			if c.Data == "br" {
				sn.AddChild(styledtree.NewText("\n"))
				continue
			}
			ch, err := build(c)
			if err != nil {
				return nil, err
			}
			sn.AddChild(ch)
		case html.TextNode:
			if isFormatting(c.Data) {
				continue
			}
			sn.AddChild(styledtree.NewNodeForHTMLNode(c, textstyle.Props{}))
		}
	}
	return sn, nil
}

// isFormatting is true for whitespace which only serves to lay out markup
// source, i.e., whitespace including a line break.
func isFormatting(text string) bool {
	return strings.TrimSpace(text) == "" && strings.ContainsAny(text, "\n\r")
}

// Properties collects the text properties of an element from its name,
// its attributes and its style attribute. Unknown attributes are ignored.
func Properties(h *html.Node) (style.PropertyMap, error) {
	pmap := make(style.PropertyMap)
	if key, ok := elementShortcuts[h.Data]; ok {
		pmap[key] = style.Property("true")
	}
	var inline string
	for _, a := range h.Attr {
		if a.Key == "style" {
			inline = a.Val
			continue
		}
		if key, ok := attributeKeys[strings.ReplaceAll(a.Key, "-", "")]; ok {
			pmap[key] = style.Property(a.Val)
		}
	}
	decls, err := style.ParseInlineStyle(inline)
	if err != nil {
		return nil, core.WrapError(err, core.Code(err), "element <%s>: %s", h.Data, core.UserMessage(err))
	}
	for _, k := range decls.Keys() {
		key, ok := attributeKeys[strings.ReplaceAll(k, "-", "")]
		if !ok {
			tracer().Infof("ignoring unsupported style property %s", k)
			continue
		}
		pmap[key] = decls[k]
	}
	return pmap, nil
}
