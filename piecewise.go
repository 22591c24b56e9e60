package compressed

// Ctor is a captured constructor call. Arguments are bound when the Ctor is
// built and forwarded in order when it runs.
type Ctor[T any] func() T

func Value[T any](value T) Ctor[T] {
	return func() T { return value }
}

func Args0[T any](fn func() T) Ctor[T] {
	return fn
}

func Args1[T, A any](fn func(A) T, a A) Ctor[T] {
	return func() T { return fn(a) }
}

func Args2[T, A, B any](fn func(A, B) T, a A, b B) Ctor[T] {
	return func() T { return fn(a, b) }
}

func Args3[T, A, B, C any](fn func(A, B, C) T, a A, b B, c C) Ctor[T] {
	return func() T { return fn(a, b, c) }
}

func Args4[T, A, B, C, D any](fn func(A, B, C, D) T, a A, b B, c C, d D) Ctor[T] {
	return func() T { return fn(a, b, c, d) }
}

// ArgsN binds any number of arguments to a variadic constructor. The slice is
// copied so later writes by the caller do not leak into the pair.
func ArgsN[T, A any](fn func(...A) T, args ...A) Ctor[T] {
	bound := make([]A, len(args))
	copy(bound, args)

	return func() T { return fn(bound...) }
}
