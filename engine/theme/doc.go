/*
Package theme holds the design tokens applications style text with.

A theme translates symbolic tokens into concrete values: font size tokens
("md", "4xl") into DP, weight tokens ("bold") into numeric weights, color
paths ("blue.200") into colors and font aliases ("body") into family names.
For families with registered font assets it holds a face table, which maps
weights and styles to platform font names.

Themes are constructed once, at application start, and are never mutated
afterwards. Clients derive a theme from the default theme with Extend,
or load one from a YAML or TOML file with Load. Every function working
with a theme receives it as a parameter; there is no global theme.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package theme

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ctext.theme'.
func tracer() tracing.Trace {
	return tracing.Select("ctext.theme")
}
