package styledtree

/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer

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

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ctext/core"
	"github.com/npillmayer/ctext/engine/textstyle"
	"github.com/npillmayer/ctext/engine/theme"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
//
// A node has text properties and, optionally, text of its own. Text of a
// node precedes the text of its children.
type StyNode struct {
	Name     string // element name, for tracing
	Text     string
	Props    textstyle.Props
	parent   *StyNode
	children []*StyNode
	htmlNode *html.Node
	context  textstyle.Inherited
	computed *textstyle.TextStyle
}

// NewNode creates a styled node without text.
func NewNode(name string, props textstyle.Props) *StyNode {
	return &StyNode{Name: name, Props: props}
}

// NewText creates a text leaf, which inherits all of its properties.
func NewText(text string) *StyNode {
	return &StyNode{Name: "#text", Text: text}
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(h *html.Node, props textstyle.Props) *StyNode {
	sn := &StyNode{Props: props, htmlNode: h}
	if h != nil {
		sn.Name = h.Data
		if h.Type == html.TextNode {
			sn.Name, sn.Text = "#text", h.Data
		}
	}
	return sn
}

// AddChild appends children to sn and returns sn.
func (sn *StyNode) AddChild(children ...*StyNode) *StyNode {
	for _, ch := range children {
		if ch == nil {
			continue
		}
		ch.parent = sn
		sn.children = append(sn.children, ch)
	}
	return sn
}

// Parent returns the enclosing node, or nil for a root node.
func (sn *StyNode) Parent() *StyNode {
	return sn.parent
}

// Children returns the children of sn in document order.
func (sn *StyNode) Children() []*StyNode {
	return sn.children
}

// HTMLNode gets the HTML DOM node corresponding to this styled node, if any.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// StylesCascade returns the context sn inherits from its enclosing node.
func (sn *StyNode) StylesCascade() textstyle.Inherited {
	if sn.parent == nil {
		return textstyle.Root()
	}
	return sn.parent.context
}

// Styles returns the resolved text style of a node. It returns false if
// the node has not been resolved yet.
func (sn *StyNode) Styles() (textstyle.TextStyle, bool) {
	if sn.computed == nil {
		return textstyle.TextStyle{}, false
	}
	return *sn.computed, true
}

// Context returns the properties sn passes on to its children.
func (sn *StyNode) Context() textstyle.Inherited {
	return sn.context
}

func (sn *StyNode) String() string {
	if sn.Text == "" {
		return fmt.Sprintf("<%s>", sn.Name)
	}
	text := sn.Text
	if len(text) > 20 {
		text = text[:17] + "..."
	}
	return fmt.Sprintf("<%s %q>", sn.Name, text)
}

// --- Resolving styles ------------------------------------------------------

// Resolve resolves the text styles of all nodes of a tree, top-down,
// against the empty root context. th may be nil.
//
// Resolving stops at the first error. Nodes resolved before the error keep
// their styles.
func Resolve(root *StyNode, th *theme.Theme) error {
	if root == nil {
		return core.Error(core.EINVALID, "cannot resolve styles of empty tree")
	}
	return resolve(root, textstyle.Root(), th)
}

func resolve(sn *StyNode, parent textstyle.Inherited, th *theme.Theme) error {
	ctx, ts, err := textstyle.Resolve(sn.Props, parent, th)
	if err != nil {
		return core.WrapError(err, core.Code(err), "cannot style %s: %s", sn, core.UserMessage(err))
	}
	sn.context, sn.computed = ctx, &ts
	for _, ch := range sn.children {
		if err = resolve(ch, ctx, th); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits the nodes of a tree in document order. Visiting stops at the
// first error f returns.
func Walk(root *StyNode, f func(sn *StyNode, depth int) error) error {
	return walk(root, 0, f)
}

func walk(sn *StyNode, depth int, f func(*StyNode, int) error) error {
	if sn == nil {
		return nil
	}
	if err := f(sn, depth); err != nil {
		return err
	}
	for _, ch := range sn.children {
		if err := walk(ch, depth+1, f); err != nil {
			return err
		}
	}
	return nil
}

// --- Runs ------------------------------------------------------------------

// Run is a piece of text in a uniform style.
type Run struct {
	Text  string
	Style textstyle.TextStyle
}

// Flatten collects the text of a resolved tree into runs, in document order.
// Adjacent pieces of text with identical styles are joined into a single run.
// If any node of the tree is unresolved, Flatten returns an error.
func Flatten(root *StyNode) ([]Run, error) {
	var runs []Run
	err := Walk(root, func(sn *StyNode, depth int) error {
		ts, ok := sn.Styles()
		if !ok {
			return core.Error(core.EINVALID, "node %s has not been resolved", sn)
		}
		if sn.Text == "" {
			return nil
		}
		if l := len(runs); l > 0 && runs[l-1].Style == ts {
			runs[l-1].Text += sn.Text
			return nil
		}
		runs = append(runs, Run{Text: sn.Text, Style: ts})
		return nil
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("flattened tree into %d runs", len(runs))
	return runs, nil
}

// Dump returns an indented listing of a tree and its resolved styles.
func Dump(root *StyNode) string {
	var b strings.Builder
	_ = Walk(root, func(sn *StyNode, depth int) error {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(sn.String())
		if ts, ok := sn.Styles(); ok {
			b.WriteString(" ")
			b.WriteString(ts.String())
		}
		b.WriteByte('\n')
		return nil
	})
	return b.String()
}
