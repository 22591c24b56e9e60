package compressed

import "fmt"

type empty struct{}

// nocmp is zero-size but not comparable.
type nocmp [0]func()

type marker struct {
	_ nocmp
}

type vec3 struct {
	X, Y, Z int
}

func newVec3(x, y, z int) vec3 {
	return vec3{X: x, Y: y, Z: z}
}

type name struct {
	Given, Family string
}

func newName(given, family string) name {
	return name{Given: given, Family: family}
}

// tracked swaps V but keeps its own Swaps counter, so a plain assignment swap
// is distinguishable from a call to Swap.
type tracked struct {
	V     int
	Swaps int
}

func (t *tracked) Swap(other *tracked) {
	t.V, other.V = other.V, t.V
	t.Swaps++
	other.Swaps++
}

type faulty struct {
	V int
}

func (f *faulty) Swap(other *faulty) {
	panic(fmt.Sprintf("swap %d with %d", f.V, other.V))
}
