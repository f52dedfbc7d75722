package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.core")
	defer teardown()
	//
	err := Error(EUNSUPPORTED, "font alias %q is a style object", "heading")
	assert.Equal(t, EUNSUPPORTED, Code(err))
	assert.Equal(t, `font alias "heading" is a style object`, UserMessage(err))
	//
	wrapped := fmt.Errorf("resolving node: %w", err)
	assert.Equal(t, EUNSUPPORTED, Code(wrapped), "code must survive wrapping")
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
}

func TestWrapNilError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctext.core")
	defer teardown()
	//
	err := WrapError(nil, EMISSING, "font %s", "Roboto")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "not found", errors.Unwrap(err).Error())
	assert.Contains(t, err.Error(), "[122]")
	//
	err = ErrorWithCode(nil, EINVALID)
	assert.Equal(t, "invalid", UserMessage(err))
}
