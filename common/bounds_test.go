package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyBounds(t *testing.T) {
	b := EmptyBounds()
	assert.True(t, b.IsEmpty())
}

func TestExtendPoint(t *testing.T) {
	b := EmptyBounds()
	b = b.ExtendPoint([3]float32{1, 2, 3})
	b = b.ExtendPoint([3]float32{-1, 0, 5})

	assert.False(t, b.IsEmpty())
	assert.Equal(t, [3]float32{-1, 0, 3}, b.Min)
	assert.Equal(t, [3]float32{1, 2, 5}, b.Max)
}

func TestUnion(t *testing.T) {
	a := Bounds{Min: [3]float32{0, 0, 0}, Max: [3]float32{1, 1, 1}}
	b := Bounds{Min: [3]float32{-2, 0, 0}, Max: [3]float32{0, 3, 1}}

	u := a.Union(b)
	assert.Equal(t, [3]float32{-2, 0, 0}, u.Min)
	assert.Equal(t, [3]float32{1, 3, 1}, u.Max)

	// Union with an empty box changes nothing.
	assert.Equal(t, a, a.Union(EmptyBounds()))
}

func TestCenterAndSize(t *testing.T) {
	b := Bounds{Min: [3]float32{-1, 0, 2}, Max: [3]float32{3, 4, 6}}

	assert.Equal(t, [3]float32{1, 2, 4}, b.Center())
	assert.Equal(t, [3]float32{4, 4, 4}, b.Size())
}

func TestCorners(t *testing.T) {
	b := Bounds{Min: [3]float32{0, 0, 0}, Max: [3]float32{1, 1, 1}}
	corners := b.Corners()

	assert.Len(t, corners, 8)
	seen := map[[3]float32]bool{}
	for _, c := range corners {
		seen[c] = true
	}
	assert.True(t, seen[[3]float32{0, 0, 0}])
	assert.True(t, seen[[3]float32{1, 1, 1}])
	assert.True(t, seen[[3]float32{1, 0, 1}])
	assert.Len(t, seen, 8)
}
