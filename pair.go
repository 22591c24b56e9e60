// Package compressed provides Pair, a two-slot value container that spends no
// storage on a slot whose type carries no runtime state.
package compressed

import "fmt"

// Pair stores one F and one S. A zero-size F or S is merged into the pair and
// occupies no bytes of its own; any other type is laid out as a plain field.
//
// The zero value holds the zero values of F and S and is ready to use.
type Pair[F, S any] struct {
	first  slot[F, firstTag]
	second slot[S, secondTag]
}

func New[F, S any]() Pair[F, S] {
	return Pair[F, S]{}
}

// NewPair builds a pair from its two values. F and S are inferred.
func NewPair[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{
		first:  newSlot[F, firstTag](first),
		second: newSlot[S, secondTag](second),
	}
}

// Piecewise builds each half by running its constructor call. A nil Ctor
// leaves that half at its zero value.
func Piecewise[F, S any](first Ctor[F], second Ctor[S]) Pair[F, S] {
	return Pair[F, S]{
		first:  pieceSlot[F, firstTag](first),
		second: pieceSlot[S, secondTag](second),
	}
}

func (p *Pair[F, S]) First() *F {
	if p == nil {
		return nil
	}
	return p.first.get()
}

func (p *Pair[F, S]) Second() *S {
	if p == nil {
		return nil
	}
	return p.second.get()
}

// Values returns copies of both halves.
func (p Pair[F, S]) Values() (F, S) {
	return *p.first.get(), *p.second.get()
}

func (p Pair[F, S]) Clone() Pair[F, S] {
	return p
}

// Move hands the held values to the caller and resets p to the zero pair.
func (p *Pair[F, S]) Move() Pair[F, S] {
	if p == nil {
		return Pair[F, S]{}
	}

	moved := *p
	*p = Pair[F, S]{}
	return moved
}

func (p Pair[F, S]) String() string {
	first, second := p.Values()
	return fmt.Sprintf("(%v, %v)", first, second)
}
