package compressed

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairSuite runs the same checks whatever strategy F ends up with.
func pairSuite[F any](t *testing.T, a, b F) {
	t.Helper()

	p := NewPair(a, "second")
	assert.Equal(t, a, *p.First())
	assert.Equal(t, "second", *p.Second())

	*p.First() = b
	*p.Second() = "changed"
	first, second := p.Values()
	assert.Equal(t, b, first)
	assert.Equal(t, "changed", second)

	copied := p
	*copied.Second() = "copy"
	assert.Equal(t, "changed", *p.Second())
	assert.Equal(t, b, *copied.First())

	var zero Pair[F, string]
	var zeroF F
	assert.Equal(t, zeroF, *zero.First())
	assert.Empty(t, *zero.Second())

	moved := p.Move()
	assert.Equal(t, b, *moved.First())
	assert.Equal(t, "changed", *moved.Second())
	assert.Equal(t, zeroF, *p.First())
	assert.Empty(t, *p.Second())
}

func TestPairBoxedFirst(t *testing.T) {
	pairSuite(t, 1, 2)
	pairSuite(t, newVec3(1, 2, 3), newVec3(4, 5, 6))
}

func TestPairMergedFirst(t *testing.T) {
	pairSuite(t, empty{}, empty{})
	pairSuite(t, marker{}, marker{})
}

func TestNewPairValues(t *testing.T) {
	values := []struct {
		first  int
		second string
	}{
		{0, ""},
		{1, "a"},
		{-42, "with space"},
	}

	for _, value := range values {
		p := NewPair(value.first, value.second)
		assert.Equal(t, value.first, *p.First())
		assert.Equal(t, value.second, *p.Second())
	}
}

func TestPairSameTypes(t *testing.T) {
	p := NewPair(empty{}, empty{})
	assert.Zero(t, unsafe.Sizeof(p))

	q := NewPair(1, 2)
	*q.First() = 10
	assert.Equal(t, 10, *q.First())
	assert.Equal(t, 2, *q.Second())
}

func TestPairMergedAddress(t *testing.T) {
	p := NewPair(empty{}, int64(7))
	assert.True(t, unsafe.Pointer(p.First()) == unsafe.Pointer(&p))
	assert.Equal(t, int64(7), *p.Second())
}

func TestPairNew(t *testing.T) {
	p := New[vec3, name]()
	assert.Equal(t, vec3{}, *p.First())
	assert.Equal(t, name{}, *p.Second())
}

func TestPairClone(t *testing.T) {
	p := NewPair(newVec3(1, 2, 3), []int{1})
	c := p.Clone()
	require.Equal(t, p, c)

	c.First().X = 99
	assert.Equal(t, 1, p.First().X)
}

func TestPairNilReceiver(t *testing.T) {
	var p *Pair[int, string]
	assert.Nil(t, p.First())
	assert.Nil(t, p.Second())
	assert.Equal(t, Pair[int, string]{}, p.Move())
}

func TestPairString(t *testing.T) {
	assert.Equal(t, "(1, x)", NewPair(1, "x").String())
	assert.Equal(t, "({}, 2)", NewPair(empty{}, 2).String())
}
