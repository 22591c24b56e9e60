package compressed

type Pairs[F, S any] []Pair[F, S]

func (lst Pairs[F, S]) Firsts() (firsts []F) {
	for i := range lst {
		firsts = append(firsts, *lst[i].First())
	}

	return
}

func (lst Pairs[F, S]) Seconds() (seconds []S) {
	for i := range lst {
		seconds = append(seconds, *lst[i].Second())
	}

	return
}

func (lst Pairs[F, S]) Unzip() ([]F, []S) {
	return lst.Firsts(), lst.Seconds()
}

// Zip pairs firsts[i] with seconds[i], stopping at the shorter slice.
func Zip[F, S any](firsts []F, seconds []S) Pairs[F, S] {
	length := min(len(firsts), len(seconds))

	lst := make(Pairs[F, S], 0, length)
	for i := 0; i < length; i++ {
		lst = append(lst, NewPair(firsts[i], seconds[i]))
	}

	return lst
}
