package form

import "slices"

// ChangeHandler receives the new value of an input.
type ChangeHandler func(value string)

// BlurHandler is called when an input loses focus.
type BlurHandler func()

// Adapt turns a ChangeHandler into a handler for a UI event type E,
// using extract to read the new value from the event.
func Adapt[E any](h ChangeHandler, extract func(E) string) func(E) {
	return func(e E) {
		h(extract(e))
	}
}

// listeners keeps subscribers in subscription order.
type listeners[F any] struct {
	subs []*subscriber[F]
}

type subscriber[F any] struct {
	fn F
}

// add registers fn and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (l *listeners[F]) add(fn F) func() {
	sub := &subscriber[F]{fn: fn}
	l.subs = append(l.subs, sub)
	return func() {
		l.subs = slices.DeleteFunc(l.subs, func(s *subscriber[F]) bool {
			return s == sub
		})
	}
}

// each calls notify for every subscriber registered when it starts.
func (l *listeners[F]) each(notify func(F)) {
	for _, sub := range slices.Clone(l.subs) {
		notify(sub.fn)
	}
}
