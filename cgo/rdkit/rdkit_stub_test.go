//go:build !cgo || !rdkit

package rdkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/molkit/internal/core/domain"
)

func TestStubParser(t *testing.T) {
	p, err := New(Options{})
	require.NoError(t, err)

	mol, err := p.Parse(context.Background(), "CCO")
	assert.Nil(t, mol)
	assert.ErrorIs(t, err, domain.ErrParserUnavailable)
	assert.Equal(t, "unavailable", p.Version())
	assert.NoError(t, p.Close())
}
