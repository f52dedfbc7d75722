package font

import (
	"strconv"
	"strings"

	"github.com/npillmayer/ctext/core"
)

// Descriptor describes a font asset by its key. Keys follow the naming scheme
// of packaged Google fonts for mobile apps:
//
//	<Family>_<3-digit-weight><WeightName>[_Italic]
//
// for example "Roboto_400Regular" or "PlayfairDisplay_700Bold_Italic".
type Descriptor struct {
	Key    string
	Family string
	Weight Weight
	Italic bool
}

// Style returns the font style of a descriptor.
func (d Descriptor) Style() Style {
	if d.Italic {
		return StyleItalic
	}
	return StyleNormal
}

// ParseKey parses a font key into a descriptor.
// The family is everything up to the first underscore, the weight is taken
// from the first three digits after it, and any further non-empty segment
// marks the face as italic.
func ParseKey(key string) (Descriptor, error) {
	segments := strings.Split(key, "_")
	if len(segments) < 2 || segments[0] == "" {
		return Descriptor{}, core.Error(core.EINVALID, "font key %q lacks family or weight", key)
	}
	if len(segments[1]) < 3 {
		return Descriptor{}, core.Error(core.EINVALID, "font key %q lacks a 3-digit weight", key)
	}
	digits := segments[1][:3]
	for _, c := range []byte(digits) {
		if c < '0' || c > '9' {
			return Descriptor{}, core.Error(core.EINVALID, "font key %q lacks a 3-digit weight", key)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return Descriptor{}, core.Error(core.EINVALID, "font key %q lacks a 3-digit weight", key)
	}
	return Descriptor{
		Key:    key,
		Family: segments[0],
		Weight: Weight(n),
		Italic: len(segments) > 2 && segments[2] != "",
	}, nil
}
