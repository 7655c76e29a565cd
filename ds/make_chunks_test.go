package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeChunks(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, MakeChunks([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2, 3}}, MakeChunks([]int{1, 2, 3}, 3))
	assert.Equal(t, [][]int{}, MakeChunks([]int{1, 2, 3}, 0))
	assert.Equal(t, [][]int{}, MakeChunks([]int{}, 4))
}

func TestShallowCopy(t *testing.T) {
	ts := []string{"a", "b"}
	tsCopy := ShallowCopy(ts)
	tsCopy[0] = "z"
	assert.Equal(t, []string{"a", "b"}, ts)
}
