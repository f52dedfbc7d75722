/*
Package textstyle resolves the styles of nested text.

Text nodes are nested. Each node may set some of its style properties
(font family, weight, style, size, color, line height, letter spacing and
decoration); properties it does not set are inherited from the enclosing
node. Property values may be theme tokens, which are translated to concrete
values with the help of a theme.

Resolve is called once per node, top-down. It receives the resolved
properties of the enclosing node as a parameter of type Inherited and returns
the Inherited value for the node's children, together with the resolved
TextStyle of the node itself:

	ctx, rootStyle, err := textstyle.Resolve(rootProps, textstyle.Root(), th)
	_, childStyle, err := textstyle.Resolve(childProps, ctx, th)

Resolution is a pure function of its arguments and may be called
concurrently.

Precedence of values for a property is

	explicit property > boolean shortcut > inherited > theme base style

Font families pass through two more stages: a family may be an alias
defined by the theme, and for families with registered font assets the
platform name of the face matching the resolved weight and style is
looked up in the theme's face table.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package textstyle

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ctext.style'.
func tracer() tracing.Trace {
	return tracing.Select("ctext.style")
}
