package lager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/lager/value"
)

func TestProfile_Collect(t *testing.T) {
	t.Parallel()

	dict := value.NewDict()
	dict.Set("port", value.Int(8080))

	result := Profile("staging").Collect(dict)

	require.Len(t, result, 1)
	assert.Same(t, dict, result[Profile("staging")])
}

func TestProfile_CaseSensitive(t *testing.T) {
	t.Parallel()

	dict := value.NewDict()

	result := Profile("Debug").Collect(dict)

	_, ok := result[Profile("debug")]
	assert.False(t, ok)

	_, ok = result[Profile("Debug")]
	assert.True(t, ok)
}

func TestProfile_Reserved(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", Default.String())
	assert.Equal(t, "global", Global.String())
}
