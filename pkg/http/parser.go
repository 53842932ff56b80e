package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	pkgstrings "github.com/klwxsrx/go-token-service/pkg/strings"
)

const bearerAuthPrefix = "Bearer "

type (
	DataExtractor[T any] func(dataProvider) (T, error)

	supportedParsingTypes interface {
		pkgstrings.SupportedValueParsingTypes | pkgstrings.SupportedPointerParsingTypes
	}

	dataProvider interface {
		PathParameters() map[string]string
		QueryParameters() url.Values
		Header() http.Header
		Cookies() []*http.Cookie
		Body() io.ReadCloser
	}

	requestDataProvider struct {
		*http.Request
	}
)

var ErrParsingError = errors.New("parsing error")

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(requestDataProvider{r})
}

func ParseRequestOptional[T any](r *http.Request, extractor DataExtractor[T], lastErr error) *T {
	if lastErr != nil {
		return nil
	}

	result, err := extractor(requestDataProvider{r})
	if err != nil {
		return nil
	}

	return &result
}

func PathParameter[T supportedParsingTypes](param string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		paramValue, ok := p.PathParameters()[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](paramValue)
	}
}

func QueryParameter[T supportedParsingTypes](param string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		value := p.QueryParameters().Get(param)
		if value == "" {
			var result T
			return result, fmt.Errorf("%w: query parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](value)
	}
}

func Header[T supportedParsingTypes](key string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		header := p.Header().Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValueImpl[T](header)
	}
}

func BearerToken() DataExtractor[string] {
	return func(p dataProvider) (string, error) {
		header := p.Header().Get("Authorization")
		if !strings.HasPrefix(header, bearerAuthPrefix) {
			return "", fmt.Errorf("%w: bearer authorization not found", ErrParsingError)
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerAuthPrefix))
		if token == "" {
			return "", fmt.Errorf("%w: bearer token is empty", ErrParsingError)
		}

		return token, nil
	}
}

func CookieValue[T supportedParsingTypes](name string) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		for _, c := range p.Cookies() {
			if c.Name == name {
				return parseTypedValueImpl[T](c.Value)
			}
		}

		var result T
		return result, fmt.Errorf("%w: cookie with name %s not found", ErrParsingError, name)
	}
}

// OneOf returns the result of the first extractor that succeeds
func OneOf[T any](extractors ...DataExtractor[T]) DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		var result T
		err := fmt.Errorf("%w: no data extractors", ErrParsingError)
		for _, extractor := range extractors {
			result, err = extractor(p)
			if err == nil {
				return result, nil
			}
		}

		return result, err
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(p dataProvider) (T, error) {
		var result T
		err := json.NewDecoder(p.Body()).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func (p requestDataProvider) PathParameters() map[string]string {
	return mux.Vars(p.Request)
}

func (p requestDataProvider) QueryParameters() url.Values {
	return p.Request.URL.Query()
}

func (p requestDataProvider) Header() http.Header {
	return p.Request.Header
}

func (p requestDataProvider) Body() io.ReadCloser {
	if p.Request.Body == nil {
		return http.NoBody
	}

	return p.Request.Body
}

func parseTypedValueImpl[T supportedParsingTypes](value string) (T, error) {
	v, err := pkgstrings.ParseTypedValue[T](value)
	if err == nil {
		return v, nil
	}

	return v, fmt.Errorf("%w: %w", ErrParsingError, err)
}
