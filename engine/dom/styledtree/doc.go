/*
Package styledtree implements a tree of text nodes with resolved styles.

Styles are resolved top-down. Every node receives the resolved properties of
its parent as an explicit argument; the tree itself is the only place
where inherited properties are kept.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styledtree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ctext.tree'.
func tracer() tracing.Trace {
	return tracing.Select("ctext.tree")
}
