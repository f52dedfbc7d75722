/*
Package css holds option types for CSS-like property values.

Dimensions of text styles may be absolute or relative to the font size of
the text they apply to ("1.5em", "120%"). DimenT keeps the unit until the
font size is known.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ctext.style'.
func tracer() tracing.Trace {
	return tracing.Select("ctext.style")
}
