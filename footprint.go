package compressed

import "unsafe"

type Strategy uint8

const (
	// Boxed stores the value as an ordinary field.
	Boxed Strategy = iota
	// Merged adopts the value into the slot itself, no storage is reserved.
	Merged
)

func (s Strategy) String() string {
	switch s {
	case Boxed:
		return "boxed"
	case Merged:
		return "merged"
	}
	return "unknown"
}

// FootprintFree reports whether T carries no runtime state. A zero-size type
// has exactly one value, so it can share the address of its container.
func FootprintFree[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 0
}

func StrategyOf[T any]() Strategy {
	if FootprintFree[T]() {
		return Merged
	}
	return Boxed
}
