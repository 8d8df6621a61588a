package lager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/lager/value"
)

func TestTypeError_Message(t *testing.T) {
	t.Parallel()

	err := &TypeError{Actual: value.KindString, Expected: value.KindMap}

	assert.Equal(t, "invalid type: found string, expected map", err.Error())
}

func TestTypeError_MatchesSentinel(t *testing.T) {
	t.Parallel()

	var err error = &TypeError{Actual: value.KindInt, Expected: value.KindMap}

	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestTypeError_WrappedMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("provider failed: %w", &TypeError{Actual: value.KindArray, Expected: value.KindMap})

	assert.ErrorIs(t, err, ErrInvalidType)

	var typeErr *TypeError

	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, value.KindArray, typeErr.Actual)
	assert.Equal(t, value.KindMap, typeErr.Expected)
}

func TestTypeError_DoesNotMatchOtherErrors(t *testing.T) {
	t.Parallel()

	err := &TypeError{Actual: value.KindNull, Expected: value.KindMap}

	assert.NotErrorIs(t, err, errors.New("invalid type"))
}
