package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_ClassifiedError(t *testing.T) {
	err := New(KindNotFound, "Vehicle not found")
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Vehicle not found", err.Error())
}

func TestKindOf_WrappedChain(t *testing.T) {
	inner := New(KindCapacityExceeded, "Cargo weight (1200kg) exceeds vehicle max capacity (1000kg)")
	outer := fmt.Errorf("create trip: %w", inner)

	assert.Equal(t, KindCapacityExceeded, KindOf(outer))
	assert.True(t, IsKind(outer, KindCapacityExceeded))
	assert.False(t, IsKind(outer, KindNotFound))
}

func TestKindOf_UnclassifiedDefaultsToStorage(t *testing.T) {
	assert.Equal(t, KindStorage, KindOf(errors.New("connection refused")))
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("driver: bad connection")
	err := Wrap(KindStorage, "failed to dispatch trip", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to dispatch trip")
	assert.Contains(t, err.Error(), "bad connection")
}

func TestIs_MatchesByKind(t *testing.T) {
	err := Newf(KindInvalidTransition, "Trip is not in %s status", "draft")
	assert.True(t, errors.Is(err, New(KindInvalidTransition, "anything")))
	assert.False(t, errors.Is(err, New(KindValidation, "anything")))
}

func TestIsKind_NilError(t *testing.T) {
	assert.False(t, IsKind(nil, KindNotFound))
}
