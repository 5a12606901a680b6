package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReturnsNonNil(t *testing.T) {
	l := NewLogger("test-service")
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// Must not panic and must accept any level.
	l.Debug().Msg("dropped")
	l.Error().Msg("dropped")
}

func TestGetChildLogger_IndependentOfParent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromRequest_ExtractsAttachedLogger(t *testing.T) {
	nop := Nop()
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(nop.Logger.WithContext(r.Context()))

	l := FromRequest(r)
	require.NotNil(t, l)
}
