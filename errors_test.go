package kmeanstree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"kmeanstree/kmeans"
)

func TestTranslateErrorNil(t *testing.T) {
	assert.NoError(t, translateError(nil))
}

func TestTranslateErrorDimensionMismatch(t *testing.T) {
	src := &kmeans.ErrDimensionMismatch{Expected: 3, Actual: 2}
	out := translateError(src)
	var dm *ErrDimensionMismatch
	assert.ErrorAs(t, out, &dm)
	assert.Equal(t, 3, dm.Expected)
	assert.Equal(t, 2, dm.Actual)
	assert.ErrorIs(t, out, src)
}

func TestTranslateErrorInvariantViolation(t *testing.T) {
	src := &kmeans.ErrInvariantViolation{Detail: "no build"}
	out := translateError(src)
	assert.ErrorIs(t, out, ErrNotBuilt)
}

func TestTranslateErrorInvalidK(t *testing.T) {
	out := translateError(kmeans.ErrInvalidK)
	assert.ErrorIs(t, out, ErrInvalidK)
}

func TestTranslateErrorPassthrough(t *testing.T) {
	other := errors.New("boom")
	assert.Same(t, other, translateError(other))
}
