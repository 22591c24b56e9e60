package compressed

import "unsafe"

type SlotLayout struct {
	Strategy Strategy
	Size     uintptr
	Offset   uintptr
}

// Layout describes how a Pair[F, S] is laid out in memory.
//
// Padding is whatever the pair costs beyond its two halves. It is non-zero
// when alignment forces a gap between the halves, or when a zero-size second
// half trails a stateful first half: Go pads such a struct so the address of
// the trailing field stays inside the object.
type Layout struct {
	Size    uintptr
	Align   uintptr
	Padding uintptr
	First   SlotLayout
	Second  SlotLayout
}

func LayoutOf[F, S any]() Layout {
	var p Pair[F, S]

	first := SlotLayout{
		Strategy: p.first.strategy(),
		Size:     unsafe.Sizeof(p.first),
		Offset:   unsafe.Offsetof(p.first),
	}
	second := SlotLayout{
		Strategy: p.second.strategy(),
		Size:     unsafe.Sizeof(p.second),
		Offset:   unsafe.Offsetof(p.second),
	}

	size := unsafe.Sizeof(p)

	return Layout{
		Size:    size,
		Align:   unsafe.Alignof(p),
		Padding: size - first.Size - second.Size,
		First:   first,
		Second:  second,
	}
}

// Compressed reports whether at least one half was merged away.
func (l Layout) Compressed() bool {
	return l.First.Strategy == Merged || l.Second.Strategy == Merged
}
