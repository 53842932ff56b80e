package lazy

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

var ErrProviderPanicked = errors.New("provider panicked")

// Loader resolves a value on first use and keeps it (or the first load error) for its whole lifetime.
// Concurrent first calls wait for a single provider invocation.
type Loader[T any] interface {
	MustLoad() T
	Load() (T, error)
	IfLoaded(func(T))
}

type loader[T any] struct {
	provider func() (T, error)
	once     sync.Once
	isLoaded atomic.Bool
	value    T
	err      error
}

func New[T any](provider func() (T, error)) Loader[T] {
	return &loader[T]{provider: provider}
}

// Value returns an already loaded Loader
func Value[T any](value T) Loader[T] {
	l := &loader[T]{value: value}
	l.once.Do(func() {})
	l.isLoaded.Store(true)
	return l
}

func (l *loader[T]) MustLoad() T {
	value, err := l.Load()
	if err != nil {
		panic(err)
	}

	return value
}

func (l *loader[T]) Load() (T, error) {
	l.once.Do(l.load)
	return l.value, l.err
}

// load keeps a provider panic as the load error, sync.Once would otherwise report the value as loaded
func (l *loader[T]) load() {
	defer func() {
		msg := recover()
		if msg == nil {
			return
		}

		if err, ok := msg.(error); ok {
			l.err = fmt.Errorf("load value of %T: %w: %w", l.value, ErrProviderPanicked, err)
			return
		}
		l.err = fmt.Errorf("load value of %T: %w: %v", l.value, ErrProviderPanicked, msg)
	}()

	value, err := l.provider()
	if err != nil {
		l.err = fmt.Errorf("load value of %T: %w", l.value, err)
		return
	}

	l.value = value
	l.isLoaded.Store(true)
}

func (l *loader[T]) IfLoaded(f func(T)) {
	if l.isLoaded.Load() {
		f(l.value)
	}
}
