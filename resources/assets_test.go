package resources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconsEmbedded(t *testing.T) {
	for _, name := range []string{Pig, Blossom, BlossomPaused, Moon, Sun} {
		resource, err := Icon(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, resource.Name())
		assert.True(t, strings.HasPrefix(string(resource.Content()), "<svg"), name)
	}
}

func TestIconCached(t *testing.T) {
	first := MustIcon(Pig)
	second := MustIcon(Pig)
	assert.Same(t, first, second)
}

func TestIconMissing(t *testing.T) {
	_, err := Icon("cow.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("cow.svg") })
}
