package lazy_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/go-token-service/pkg/lazy"
)

func TestLoader_Load_CallsProviderOnceForConcurrentCallers(t *testing.T) {
	var calls atomic.Int32
	loader := lazy.New(func() (int, error) {
		return int(calls.Add(1)) * 100, nil
	})

	const callers = 64
	results := make([]int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = loader.MustLoad()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, result := range results {
		assert.Equal(t, 100, result)
	}
}

func TestLoader_Load_MemoizesError(t *testing.T) {
	var calls int
	providerErr := errors.New("unexpected")
	loader := lazy.New(func() (string, error) {
		calls++
		return "", providerErr
	})

	_, err := loader.Load()
	require.ErrorIs(t, err, providerErr)
	_, err = loader.Load()
	require.ErrorIs(t, err, providerErr)
	assert.Equal(t, 1, calls)
	assert.Panics(t, func() { loader.MustLoad() })
}

func TestLoader_Load_KeepsProviderPanicAsError(t *testing.T) {
	tests := []struct {
		name  string
		panic any
	}{
		{"error_value", errors.New("broken file")},
		{"string_value", "broken file"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var calls int
			loader := lazy.New(func() (int, error) {
				calls++
				panic(tc.panic)
			})

			for n := 0; n < 2; n++ {
				value, err := loader.Load()
				require.ErrorIs(t, err, lazy.ErrProviderPanicked)
				assert.ErrorContains(t, err, "broken file")
				assert.Zero(t, value)
			}
			assert.Equal(t, 1, calls)
			assert.Panics(t, func() { loader.MustLoad() })

			var loaded bool
			loader.IfLoaded(func(int) { loaded = true })
			assert.False(t, loaded)
		})
	}
}

func TestLoader_Load_KeepsNestedMustLoadFailure(t *testing.T) {
	inner := lazy.New(func() (string, error) { return "", errors.New("missing properties file") })
	outer := lazy.New(func() (int, error) { return len(inner.MustLoad()), nil })

	_, err := outer.Load()
	require.ErrorIs(t, err, lazy.ErrProviderPanicked)
	_, err = outer.Load()
	assert.ErrorContains(t, err, "missing properties file")
}

func TestLoader_IfLoaded_SkipsUnloaded(t *testing.T) {
	loader := lazy.New(func() (int, error) { return 1, nil })

	var called bool
	loader.IfLoaded(func(int) { called = true })
	assert.False(t, called)

	loader.MustLoad()
	loader.IfLoaded(func(v int) { called = v == 1 })
	assert.True(t, called)
}

func TestValue_IsLoaded(t *testing.T) {
	loader := lazy.Value("ready")

	var got string
	loader.IfLoaded(func(v string) { got = v })
	assert.Equal(t, "ready", got)
	assert.Equal(t, "ready", loader.MustLoad())
}
