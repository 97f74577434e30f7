package errcat_test

import (
	"errors"
	"testing"

	"emote-manager/core/errcat"

	"github.com/stretchr/testify/assert"
)

func loadCatalog(t *testing.T) *errcat.Catalog {
	t.Helper()
	c, err := errcat.Load("../../data/errorlist.json")
	assert.NoError(t, err)
	return c
}

func TestNewKnownCode(t *testing.T) {
	c := loadCatalog(t)

	e := c.New(errcat.CodeUserNotFound)
	assert.Equal(t, "7002", e.Code)
	assert.Equal(t, "User not found", e.Message)
	assert.Empty(t, e.Trace)
}

func TestNewUnknownCodeFallsBackToGeneric(t *testing.T) {
	c := loadCatalog(t)

	e := c.New("9999")
	assert.Empty(t, e.Code)
	assert.Equal(t, errcat.GenericMessage, e.Message)
	assert.Contains(t, e.Trace, "9999")
}

func TestUpstreamKeepsMessageVerbatim(t *testing.T) {
	c := loadCatalog(t)

	e := c.Upstream("this emote is already in the set")
	assert.Empty(t, e.Code)
	assert.Equal(t, "this emote is already in the set", e.Message)
}

func TestWrapPassesCatalogErrorsThrough(t *testing.T) {
	c := loadCatalog(t)

	original := c.New(errcat.CodeEmoteNotFound)
	wrapped := c.Wrap(original)
	assert.Same(t, original, wrapped)
}

func TestWrapHidesInternalErrorsBehindGenericMessage(t *testing.T) {
	c := loadCatalog(t)

	wrapped := c.Wrap(errors.New("dial tcp: connection refused"))
	assert.Equal(t, errcat.GenericMessage, wrapped.Message)
	assert.Equal(t, "dial tcp: connection refused", wrapped.Trace)
}

func TestWrapNil(t *testing.T) {
	c := loadCatalog(t)
	assert.Nil(t, c.Wrap(nil))
}

func TestErrorString(t *testing.T) {
	e := &errcat.Error{Code: "7008", Message: "Emote Not Found"}
	assert.Equal(t, "7008: Emote Not Found", e.Error())

	upstream := &errcat.Error{Message: "rate limited"}
	assert.Equal(t, "rate limited", upstream.Error())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := errcat.Load("does-not-exist.json")
	assert.Error(t, err)
}
