package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	root := errors.New("connection reset")

	t.Run("rolled up message", func(t *testing.T) {
		err := WrapError(root, "failed to execute insert")
		assert.Equal(t, "failed to execute insert: connection reset", err.Error())

		err = WrapErrorf(err, "collection %s", "restaurants")
		assert.Equal(t, "collection restaurants: failed to execute insert: connection reset", err.Error())
	})

	t.Run("unwrap to root cause", func(t *testing.T) {
		err := WrapError(WrapError(root, "inner"), "outer")
		assert.Equal(t, root, UnwrapError(err))
	})

	t.Run("unwrap of a plain error is the error itself", func(t *testing.T) {
		assert.Equal(t, root, UnwrapError(root))
	})

	t.Run("nil inner stops unwrapping", func(t *testing.T) {
		err := WrapError(nil, "orphan")
		assert.Equal(t, err, UnwrapError(err))
		assert.Equal(t, "orphan", err.Error())
	})
}
