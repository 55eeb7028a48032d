package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroupKind(t *testing.T) {
	t.Run("Known kinds", func(t *testing.T) {
		for _, kind := range GroupKinds() {
			parsed, err := ParseGroupKind(" " + kind.String() + " ")
			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		}

		parsed, err := ParseGroupKind("Heterogeneous")
		require.NoError(t, err)
		assert.Equal(t, Heterogeneous, parsed)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		_, err := ParseGroupKind("mixed")

		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestGroupKindWeight(t *testing.T) {
	assert.Equal(t, 1.0, Homogeneous.Weight())
	assert.Equal(t, 2.0, Heterogeneous.Weight())
	assert.Equal(t, 3.0, Combined.Weight())
	assert.False(t, GroupKind(0).Valid())
	assert.Equal(t, "GroupKind(7)", GroupKind(7).String())
}
