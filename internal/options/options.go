// Package options implements generic functional options.
//
// A package exposes options for its configurable type T as values of
// Option[T], built with New for options that validate their argument or with
// NoError for options that cannot fail:
//
//	type EncoderOption = options.Option[*Encoder]
//
//	func WithStreamBufferSize(n int) EncoderOption {
//	    return options.New(func(e *Encoder) error {
//	        if n <= 0 {
//	            return fmt.Errorf("invalid stream buffer size: %d", n)
//	        }
//	        e.bufferSize = n
//
//	        return nil
//	    })
//	}
//
// The constructor applies them in order with Apply and stops at the first error.
package options

// Option configures a value of type T.
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a function.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New returns an Option that runs fn against the target.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError returns an Option that runs fn against the target and never fails.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		fn: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order. The first failing option stops the
// chain and its error is returned; options applied before it keep their effect.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
