package metric

import "time"

type (
	Metrics interface {
		With(Labels) Metrics
		WithLabel(name, value string) Metrics
		Increment(key string)
		Duration(key string, duration time.Duration)
	}

	Labels map[string]string
)

func (l Labels) merge(other Labels) Labels {
	result := make(Labels, len(l)+len(other))
	for name, value := range l {
		result[name] = value
	}
	for name, value := range other {
		result[name] = value
	}

	return result
}
