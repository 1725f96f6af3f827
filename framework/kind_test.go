package framework

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.Equal(t, KindError, KindOf(errors.New("plain")))
	assert.Equal(t, KindRange, KindOf(Raise(KindRange, "x")))
	assert.Equal(t, Kind("MyError"), KindOf(Raisef("MyError", "value %d", 3)))
	assert.Equal(t, KindType, KindOf(fmt.Errorf("outer: %w", Raise(KindType, "inner"))))
}

func TestRaisedErrorMessage(t *testing.T) {
	assert.EqualError(t, Raisef(KindRange, "index %d out of range", 4), "index 4 out of range")
}
