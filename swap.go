package compressed

// Swapper is implemented by types that exchange their state with another
// value of the same type in their own way. Pair swaps such halves through
// Swap instead of plain assignment.
type Swapper[T any] interface {
	Swap(other *T)
}

func exchange[T any](a, b *T) {
	if swapper, ok := any(a).(Swapper[T]); ok {
		swapper.Swap(b)
		return
	}

	*a, *b = *b, *a
}

// Swap exchanges both halves with other's. The two exchanges are not atomic:
// if a custom Swap on the first half panics, the second half is untouched; if
// one on the second half panics, the first halves stay exchanged. Either way
// the panic propagates.
func (p *Pair[F, S]) Swap(other *Pair[F, S]) {
	if p == nil || other == nil || p == other {
		return
	}

	exchange(p.first.get(), other.first.get())
	exchange(p.second.get(), other.second.get())
}

func Swap[F, S any](a, b *Pair[F, S]) {
	a.Swap(b)
}
