package strings

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type (
	SupportedValueParsingTypes interface {
		bool | int | int64 | uint | float64 | string | time.Time | time.Duration | uuid.UUID
	}

	SupportedPointerParsingTypes interface {
		*bool | *int | *int64 | *uint | *float64 | *string | *time.Time | *time.Duration | *uuid.UUID
	}
)

func ParseTypedValue[T any](value string) (T, error) {
	var blank T
	v, err := parseTypedValue(any(blank), value)
	if err != nil {
		return blank, fmt.Errorf("convert to type %T: %w", blank, err)
	}

	return v.(T), nil
}

func parseTypedValue(blank any, value string) (any, error) {
	switch blank.(type) {
	case bool:
		return strconv.ParseBool(value)
	case int:
		return strconv.Atoi(value)
	case int64:
		return strconv.ParseInt(value, 10, 64)
	case uint:
		v, err := strconv.ParseUint(value, 10, 0)
		return uint(v), err
	case float64:
		return strconv.ParseFloat(value, 64)
	case string:
		return value, nil
	case time.Time:
		return parseTime(value)
	case time.Duration:
		return time.ParseDuration(value)
	case uuid.UUID:
		return uuid.Parse(value)
	case *bool:
		return pointerTo[bool](value)
	case *int:
		return pointerTo[int](value)
	case *int64:
		return pointerTo[int64](value)
	case *uint:
		return pointerTo[uint](value)
	case *float64:
		return pointerTo[float64](value)
	case *string:
		return &value, nil
	case *time.Time:
		return pointerTo[time.Time](value)
	case *time.Duration:
		return pointerTo[time.Duration](value)
	case *uuid.UUID:
		return pointerTo[uuid.UUID](value)
	default:
		return nil, fmt.Errorf("unsupported value type %T", blank)
	}
}

func pointerTo[T any](value string) (any, error) {
	v, err := ParseTypedValue[T](value)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

// parseTime accepts RFC3339 with optional fractional seconds or Unix time in seconds
func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}

	unixTime, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, errors.New("RFC3339, RFC3339Nano or Unix time expected")
	}
	if unixTime < 0 {
		return time.Time{}, errors.New("got negative seconds value")
	}

	return time.Unix(unixTime, 0), nil
}
