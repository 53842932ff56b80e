package properties

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const keyDelimiter = "."

var (
	ErrInvalidValue = errors.New("invalid property value")

	errReadBytesNotSupported = errors.New("map provider supports Read only")
)

// Provider resolves dotted property keys like dataease.login_timeout
type Provider interface {
	Int(key string, defaultValue int) (int, error)
	String(key, defaultValue string) string
	Exists(key string) bool
}

type Option func(*loader)

type loader struct {
	filePath      string
	envNamespaces []string
}

// WithFile loads properties from a YAML file, an empty path is ignored
func WithFile(path string) Option {
	return func(l *loader) {
		l.filePath = path
	}
}

// WithEnvNamespace maps NAMESPACE_SOME_KEY env variables to namespace.some_key
func WithEnvNamespace(namespace string) Option {
	return func(l *loader) {
		l.envNamespaces = append(l.envNamespaces, namespace)
	}
}

// Load reads the file first, env variables override it
func Load(opts ...Option) (Provider, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	k := koanf.New(keyDelimiter)
	if l.filePath != "" {
		err := k.Load(file.Provider(l.filePath), yaml.Parser())
		if err != nil {
			return nil, fmt.Errorf("load file %s: %w", l.filePath, err)
		}
	}

	for _, namespace := range l.envNamespaces {
		prefix := strings.ToUpper(namespace) + "_"
		transform := func(s string) string {
			return strings.ToLower(namespace) + keyDelimiter + strings.ToLower(strings.TrimPrefix(s, prefix))
		}

		err := k.Load(env.Provider(prefix, keyDelimiter, transform), nil)
		if err != nil {
			return nil, fmt.Errorf("load env with prefix %s: %w", prefix, err)
		}
	}

	return provider{k}, nil
}

func NewMapProvider(values map[string]any) Provider {
	k := koanf.New(keyDelimiter)
	_ = k.Load(mapSource(values), nil)
	return provider{k}
}

type provider struct {
	k *koanf.Koanf
}

func (p provider) Int(key string, defaultValue int) (int, error) {
	if !p.k.Exists(key) {
		return defaultValue, nil
	}

	switch v := p.k.Get(key).(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrInvalidValue, key)
		}
		return int(v), nil
	case string:
		result, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %w", ErrInvalidValue, key, err)
		}
		return result, nil
	default:
		return 0, fmt.Errorf("%w: %s has type %T", ErrInvalidValue, key, v)
	}
}

func (p provider) String(key, defaultValue string) string {
	if !p.k.Exists(key) {
		return defaultValue
	}
	return p.k.String(key)
}

func (p provider) Exists(key string) bool {
	return p.k.Exists(key)
}

type mapSource map[string]any

func (m mapSource) ReadBytes() ([]byte, error) {
	return nil, errReadBytesNotSupported
}

func (m mapSource) Read() (map[string]any, error) {
	copied := make(map[string]any, len(m))
	for key, value := range m {
		copied[key] = value
	}
	return maps.Unflatten(copied, keyDelimiter), nil
}
