package errors

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(CategoryConfig, "unknown site mode")
	assert.Equal(t, "config (fatal): unknown site mode", err.Error())

	wrapped := Wrap(os.ErrNotExist, CategoryFileSystem, "missing image")
	assert.Contains(t, wrapped.Error(), "filesystem (fatal): missing image")
}

func TestUnwrapChain(t *testing.T) {
	wrapped := Wrap(os.ErrNotExist, CategoryFileSystem, "missing image")
	require.True(t, stderrors.Is(wrapped, os.ErrNotExist))

	var be *BuildError
	require.True(t, stderrors.As(wrapped, &be))
	assert.Equal(t, CategoryFileSystem, be.Category)
}

func TestWithContext(t *testing.T) {
	err := New(CategoryCatalog, "bad row").
		WithContext("line", 7).
		WithSeverity(SeverityWarning)
	assert.Equal(t, 7, err.Context["line"])
	assert.Equal(t, SeverityWarning, err.Severity)
}
