package compressed

import "unsafe"

type (
	firstTag  struct{}
	secondTag struct{}
)

// slot holds one logical field of a Pair. Tag keeps slot[T, firstTag] and
// slot[T, secondTag] distinct types when both halves share T.
type slot[T any, Tag any] struct {
	value T
}

func newSlot[T any, Tag any](value T) slot[T, Tag] {
	if FootprintFree[T]() {
		return slot[T, Tag]{}
	}
	return slot[T, Tag]{value: value}
}

func pieceSlot[T any, Tag any](ctor Ctor[T]) slot[T, Tag] {
	if ctor == nil {
		return slot[T, Tag]{}
	}
	return newSlot[T, Tag](ctor())
}

func (s *slot[T, Tag]) get() *T {
	if FootprintFree[T]() {
		// merged: the slot's own address stands in for T
		return (*T)(unsafe.Pointer(s))
	}
	return &s.value
}

func (s *slot[T, Tag]) strategy() Strategy {
	return StrategyOf[T]()
}
