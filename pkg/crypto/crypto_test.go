package crypto

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_GenerateRandomString(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s, err := GenerateRandomString()
		require.NoError(t, err)
		require.NotEmpty(t, s)
		require.False(t, seen[s])
		seen[s] = true

		// State values are embedded in redirect URLs unescaped.
		require.Equal(t, s, url.QueryEscape(s))
	}
}
