package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrInvalidNotation", ErrInvalidNotation},
		{"ErrParserUnavailable", ErrParserUnavailable},
		{"ErrParserClosed", ErrParserClosed},
		{"ErrStoreClosed", ErrStoreClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrInvalidNotation(t *testing.T) {
	assert.Equal(t, "invalid notation", ErrInvalidNotation.Error())
	assert.False(t, errors.Is(ErrInvalidNotation, ErrInvalidInput))
}

func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("rdkit: cannot parse %q: %w", "XYZQ", ErrInvalidNotation)
	assert.True(t, errors.Is(wrapped, ErrInvalidNotation))
	assert.False(t, errors.Is(wrapped, ErrParserUnavailable))
}
