package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type Handler interface {
	Method() string
	Path() string
	Handle(w ResponseWriter, r *http.Request) error
}

type ResponseWriter interface {
	SetHeader(key, value string) ResponseWriter
	SetStatusCode(httpCode int) ResponseWriter
	SetCookie(cookie *http.Cookie) ResponseWriter
	SetJSONBody(data any) ResponseWriter
}

type responseWriter struct {
	impl http.ResponseWriter

	body     []byte
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	body, err := json.Marshal(data)
	if err != nil {
		panic(fmt.Errorf("encode json body: %w", err))
	}

	w.body = body
	w.hasBody = true
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	meta := getHandlerMetadata(ctx)
	httpCode := w.httpCode
	switch {
	case err == nil:
	case errors.Is(err, ErrParsingError):
		httpCode = http.StatusBadRequest
	default:
		if code, ok := mapError(meta.errorMapping, err); ok {
			httpCode = code
		} else if httpCode < http.StatusBadRequest {
			httpCode = http.StatusInternalServerError
		}
	}

	meta.Code = httpCode
	meta.Error = err

	if err != nil || !w.hasBody {
		w.impl.WriteHeader(httpCode)
		return
	}

	w.impl.Header().Set("Content-Type", "application/json")
	w.impl.WriteHeader(httpCode)
	_, _ = w.impl.Write(w.body)
}

func (w *responseWriter) WritePanic(ctx context.Context, panic Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Code = http.StatusInternalServerError
	meta.Panic = &panic

	w.impl.WriteHeader(http.StatusInternalServerError)
}

func httpHandlerWrapper(handler func(ResponseWriter, *http.Request) error) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}

type errorMapping struct {
	code   int
	errors []error
}

// WithErrorMapping sets status codes for errors returned by handlers, checked with errors.Is
func WithErrorMapping(statusCodes map[int][]error) ServerOption {
	mapping := make([]errorMapping, 0, len(statusCodes))
	for code, errs := range statusCodes {
		mapping = append(mapping, errorMapping{code: code, errors: errs})
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			meta := getHandlerMetadata(r.Context())
			meta.errorMapping = append(meta.errorMapping, mapping...)
			handler.ServeHTTP(w, r)
		})
	})
}

func mapError(mapping []errorMapping, err error) (int, bool) {
	for _, m := range mapping {
		for _, expected := range m.errors {
			if errors.Is(err, expected) {
				return m.code, true
			}
		}
	}

	return 0, false
}
