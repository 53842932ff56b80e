package env

import (
	"errors"
	"fmt"
	"os"
	"strings"

	pkgstrings "github.com/klwxsrx/go-token-service/pkg/strings"
)

var (
	ErrNotFound     = errors.New("env not found")
	ErrInvalidValue = errors.New("env has invalid value")
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("parse environment: %w", err))
	}

	return val
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("%w: %s with type %T", ErrNotFound, key, blank)
	}

	return parse[T](key, str)
}

// ParseOptional returns nil when the variable is not set
func ParseOptional[T pkgstrings.SupportedPointerParsingTypes](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, nil
	}

	return parse[T](key, str)
}

func ParseWithDefault[T pkgstrings.SupportedValueParsingTypes](key string, defaultValue T) (T, error) {
	value, err := Parse[T](key)
	if errors.Is(err, ErrNotFound) {
		return defaultValue, nil
	}

	return value, err
}

func ParseList[T pkgstrings.SupportedValueParsingTypes](key, delimiter string) ([]T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s with type list", ErrNotFound, key)
	}

	strList := strings.Split(str, delimiter)
	result := make([]T, 0, len(strList))
	for _, item := range strList {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		v, err := parse[T](key, item)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}

	return result, nil
}

func parse[T any](key, value string) (T, error) {
	v, err := pkgstrings.ParseTypedValue[T](value)
	if err != nil {
		return v, fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
	}

	return v, nil
}
