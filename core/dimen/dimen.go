// Package dimen implements dimensions and units for text styling.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"math"
	"regexp"
	"strconv"

	"github.com/npillmayer/ctext/core"
)

// Dimen is a dimension type.
// Values are in scaled device-independent pixels (DP), i.e. 1/65536 DP.
// Mobile platforms do not distinguish between "pixels" and DP for text
// styling, therefore PX and DP are the same unit. Android's
// scale-independent pixels (SP) are treated as DP as well, as font scaling
// is applied by the platform.
type Dimen int32

// Some pre-defined dimensions
const (
	Zero   Dimen = 0
	Scaled Dimen = 1     // smallest representable unit = DP / 65536
	DP     Dimen = 65536 // device-independent pixel
	PX     Dimen = 65536 // "pixels", identical to DP
	SP     Dimen = 65536 // scale-independent pixel, identical to DP
)

// Infinity is the largest possible dimension
const Infinity = math.MaxInt32

// MaxDP is the largest number of DP a dimension can hold.
const MaxDP = float64(Infinity) / float64(DP)

// Stringer implementation.
func (d Dimen) String() string {
	return strconv.FormatFloat(d.DP(), 'f', -1, 64) + "dp"
}

// DP returns a dimension in device-independent pixels.
func (d Dimen) DP() float64 {
	return float64(d) / float64(DP)
}

// FromDP creates a dimension from a (fractional) number of DP.
// Values beyond ±MaxDP are rejected with an error of code EINVALID.
func FromDP(x float64) (Dimen, error) {
	return fromScaled(x * float64(DP))
}

// Scale multiplies d by a factor, rounding to the nearest scaled point.
// A product beyond ±MaxDP is rejected with an error of code EINVALID.
func (d Dimen) Scale(factor float64) (Dimen, error) {
	return fromScaled(float64(d) * factor)
}

func fromScaled(x float64) (Dimen, error) {
	x = math.Round(x)
	if math.IsNaN(x) || x > Infinity || x < -Infinity {
		return Zero, core.Error(core.EINVALID, "dimension %gdp out of range (max %gdp)",
			x/float64(DP), MaxDP)
	}
	return Dimen(x), nil
}

// ---------------------------------------------------------------------------

var dimenPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))(px|dp|sp|PX|DP|SP)?$`)

// ParseDimen parses a string to return an absolute dimension.
// A number without a unit is taken as DP, following the conventions of
// mobile platforms for font sizes and spacing. Units px, dp and sp are
// all equivalent.
//
//	12px
//	16sp
//	-0.5dp
func ParseDimen(s string) (Dimen, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return Zero, core.Error(core.EINVALID, "format error parsing dimension %q", s)
	}
	x, err := strconv.ParseFloat(d[1], 64)
	if err != nil { // this cannot happen
		return Zero, core.WrapError(err, core.EINVALID, "format error parsing dimension %q", s)
	}
	return FromDP(x)
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
