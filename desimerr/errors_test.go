package desimerr_test

import (
	"errors"
	"testing"

	"github.com/gosimula/desim/desimerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := desimerr.New(desimerr.InvalidParameter, "negative hold", 7, 12.5, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidParameter")
	assert.Contains(t, err.Error(), "negative hold")
	assert.Contains(t, err.Error(), "process=7")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := desimerr.New(desimerr.NotYetDefined, "no samples", 0, 0, cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestErrorIs(t *testing.T) {
	err := desimerr.New(desimerr.QueueEmpty, "empty", 1, 1, nil)
	sentinel := desimerr.New(desimerr.QueueEmpty, "", 0, 0, nil)
	assert.True(t, errors.Is(err, sentinel))

	other := desimerr.New(desimerr.BackwardClock, "", 0, 0, nil)
	assert.False(t, errors.Is(err, other))
}

func TestKindFatal(t *testing.T) {
	for _, k := range []desimerr.Kind{desimerr.InvalidParameter, desimerr.InvalidState, desimerr.BackwardClock} {
		assert.True(t, k.Fatal(), k.String())
	}
	for _, k := range []desimerr.Kind{desimerr.QueueEmpty, desimerr.NotYetDefined} {
		assert.False(t, k.Fatal(), k.String())
	}
}

func TestRaisePanics(t *testing.T) {
	assert.PanicsWithValue(t, desimerr.New(desimerr.InvalidState, "bad", 3, 9, nil), func() {
		desimerr.Raise(desimerr.InvalidState, "bad", 3, 9, nil)
	})
}
