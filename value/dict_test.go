package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict_InsertionOrder(t *testing.T) {
	t.Parallel()

	dict := NewDict()
	dict.Set("zebra", Int(1))
	dict.Set("apple", Int(2))
	dict.Set("mango", Int(3))

	assert.Equal(t, []string{"zebra", "apple", "mango"}, dict.Keys())
}

func TestDict_SetExistingKeepsPosition(t *testing.T) {
	t.Parallel()

	dict := NewDict()
	dict.Set("a", Int(1))
	dict.Set("b", Int(2))
	dict.Set("a", Int(10))

	assert.Equal(t, []string{"a", "b"}, dict.Keys())

	got, ok := dict.Get("a")
	require.True(t, ok)
	assert.Equal(t, Int(10), got)
}

func TestDict_GetMissing(t *testing.T) {
	t.Parallel()

	dict := NewDict()

	_, ok := dict.Get("absent")

	assert.False(t, ok)
	assert.Equal(t, 0, dict.Len())
}

func TestDict_Range_StopsEarly(t *testing.T) {
	t.Parallel()

	dict := NewDict()
	dict.Set("a", Int(1))
	dict.Set("b", Int(2))
	dict.Set("c", Int(3))

	var visited []string

	dict.Range(func(key string, _ Value) bool {
		visited = append(visited, key)

		return key != "b"
	})

	assert.Equal(t, []string{"a", "b"}, visited)
}

func TestDict_Interface(t *testing.T) {
	t.Parallel()

	inner := NewDict()
	inner.Set("port", Int(8080))

	dict := NewDict()
	dict.Set("server", inner)
	dict.Set("debug", Bool(false))

	expected := map[string]any{
		"server": map[string]any{"port": int64(8080)},
		"debug":  false,
	}

	assert.Equal(t, expected, dict.Interface())
}

func TestDict_Clone_Independent(t *testing.T) {
	t.Parallel()

	inner := NewDict()
	inner.Set("port", Int(8080))

	dict := NewDict()
	dict.Set("server", inner)

	clone := dict.Clone()

	clonedInner, ok := clone.Get("server")
	require.True(t, ok)

	clonedDict, ok := clonedInner.(*Dict)
	require.True(t, ok)

	clonedDict.Set("host", String("example.com"))
	clone.Set("extra", Int(1))

	assert.Equal(t, 1, inner.Len())
	assert.Equal(t, 1, dict.Len())
	assert.Equal(t, []string{"port", "host"}, clonedDict.Keys())
}

func TestDict_Clone_CopiesDictInsideArray(t *testing.T) {
	t.Parallel()

	inner := NewDict()
	inner.Set("port", Int(8080))

	dict := NewDict()
	dict.Set("servers", Array{inner})

	clone := dict.Clone()

	servers, ok := clone.Get("servers")
	require.True(t, ok)

	arr, ok := servers.(Array)
	require.True(t, ok)
	require.Len(t, arr, 1)

	clonedInner, ok := arr[0].(*Dict)
	require.True(t, ok)
	require.NotSame(t, inner, clonedInner)

	clonedInner.Set("host", String("example.com"))

	assert.Equal(t, 1, inner.Len())
}
