package poet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/swiftpoet/errors"
)

func TestParseModifier(t *testing.T) {
	for _, s := range []string{"open", "public", "fileprivate", "static", "mutating", "indirect"} {
		m, err := ParseModifier(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, m.String())
	}

	_, err := ParseModifier("Public")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidDeclarationError(err))
	assert.Contains(t, err.Error(), `unknown modifier "Public"`)
}
