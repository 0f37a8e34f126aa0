//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"turfbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("slot already taken")

	t.Run("marked error matches the marker through errors.Is", func(t *testing.T) {
		cause := errs.New("duplicate key value violates unique constraint")
		err := errs.Mark(cause, sentinel)

		require.ErrorIs(t, err, sentinel)
	})

	t.Run("marked error still matches the cause", func(t *testing.T) {
		cause := errs.New("deadline exceeded")
		err := errs.Mark(cause, sentinel)

		require.ErrorIs(t, err, cause)
	})

	t.Run("message stays that of the cause", func(t *testing.T) {
		cause := errs.New("connection refused")
		err := errs.Mark(cause, sentinel)

		assert.Equal(t, "connection refused", err.Error())
	})

	t.Run("verbose output mentions the marker", func(t *testing.T) {
		cause := errs.New("connection refused")
		err := errs.Mark(cause, sentinel)

		out := fmt.Sprintf("%+v", err)
		assert.Contains(t, out, "connection refused")
		assert.Contains(t, out, "slot already taken")
	})

	t.Run("marking nil yields the marker itself", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("marks stack across layers", func(t *testing.T) {
		outer := errs.New("database operation failed")
		err := errs.Mark(errs.Mark(errs.New("boom"), sentinel), outer)

		require.ErrorIs(t, err, sentinel)
		require.ErrorIs(t, err, outer)
	})
}

func TestWrap(t *testing.T) {
	t.Run("wrapping nil returns nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("wrapped error keeps identity", func(t *testing.T) {
		cause := errors.New("no rows")
		err := errs.Wrap(cause, "find user")

		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "find user")
	})
}
