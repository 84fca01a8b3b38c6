package optionalbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual_EmptyMarker(t *testing.T) {
	t.Parallel()

	var zeroBox Box[int]
	noneBox := None[int]()

	assert.True(t, zeroBox.Equal(Empty))
	assert.True(t, noneBox.Equal(Empty))

	occupied := Some(1)
	assert.False(t, occupied.Equal(Empty))

	occupied.Clear()
	assert.True(t, occupied.Equal(Empty))

	occupied.Set(2)
	assert.False(t, occupied.Equal(Empty))
}
