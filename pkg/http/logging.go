package http

import (
	"net/http"
	"strings"

	"github.com/klwxsrx/go-token-service/pkg/log"
)

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			if r.URL.Path == healthPath {
				return
			}

			meta := getHandlerMetadata(r.Context())
			loggerWithFields := logger.With(log.Fields{
				"method":       r.Method,
				"path":         r.URL.Path,
				"responseCode": meta.Code,
			})
			if meta.Auth != nil && meta.Auth.Principal() != nil {
				principal := *meta.Auth.Principal()
				if id := principal.ID(); id != nil {
					loggerWithFields = loggerWithFields.WithField("principal", strings.Join([]string{string(principal.Type()), *id}, ":"))
				}
			}

			switch {
			case meta.Panic != nil:
				loggerWithFields.WithField("panic", log.Fields{
					"message": meta.Panic.Message,
					"stack":   string(meta.Panic.Stacktrace),
				}).Error(r.Context(), "request handled with panic")
			case meta.Error != nil && meta.Code >= http.StatusInternalServerError:
				loggerWithFields.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with error")
			case meta.Error != nil:
				loggerWithFields.WithError(meta.Error).Log(r.Context(), infoLevel, "request handled with client error")
			default:
				loggerWithFields.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}
