/*
Package option implements option types for style attributes which may be
unset, together with a small matching facility.

An unset attribute is different from an attribute explicitly set to its
zero value: a text node with `underline=false` cancels an inherited
underline, whereas a node without an underline attribute inherits it.
Option types make this distinction explicit.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctext.core'.
func tracer() tracing.Trace {
	return tracing.Select("ctext.core")
}
