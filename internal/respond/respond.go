// Package respond installs the shared error envelope into huma and provides
// plain-HTTP fallbacks for routes outside the API surface.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	apiinternal "github.com/manseebhossain1/github-repository-finder/internal/api"
	"github.com/manseebhossain1/github-repository-finder/internal/platform/logging"
)

const (
	codeNotFound          = "NOT_FOUND"
	msgNotFound           = "resource not found"
	codeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	msgMethodNotAllowed   = "method not allowed"
	codeInternalServerErr = "INTERNAL_SERVER_ERROR"
	msgInternalServerErr  = "internal server error"
)

var installOnce sync.Once

// Install ensures huma uses the shared envelope for all error responses.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return statusError(status, statusCodeName(status), messageOrDefault(status, msg), errs...)
		}
	})
}

// Write serializes an envelope directly to the ResponseWriter.
func Write[T any](w http.ResponseWriter, status int, env apiinternal.Envelope[T]) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(env)
}

// NotFoundHandler emits a shared-envelope 404 response.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env := apiinternal.NewErrorEnvelope[struct{}](codeNotFound, msgNotFound)
		if err := Write(w, http.StatusNotFound, env); err != nil {
			logging.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler emits a shared-envelope 405 response.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		env := apiinternal.NewErrorEnvelope[struct{}](codeMethodNotAllowed, msgMethodNotAllowed)
		if err := Write(w, http.StatusMethodNotAllowed, env); err != nil {
			logging.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into structured 500 responses.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					logging.LogError(r.Context(), "panic recovered", err,
						zap.String("stack", string(debug.Stack())),
					)
					env := apiinternal.NewErrorEnvelope[struct{}](codeInternalServerErr, msgInternalServerErr)
					if writeErr := Write(w, http.StatusInternalServerError, env); writeErr != nil {
						logging.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusEnvelopeError struct {
	apiinternal.Envelope[struct{}]
	status int
}

func (e *statusEnvelopeError) Error() string {
	if e.Envelope.Error != nil && e.Envelope.Error.Message != "" {
		return e.Envelope.Error.Message
	}
	return http.StatusText(e.status)
}

func (e *statusEnvelopeError) GetStatus() int {
	return e.status
}

func statusError(status int, code, msg string, errs ...error) huma.StatusError {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("code", code),
	}
	if status >= http.StatusInternalServerError {
		logging.LogError(nil, msg, joinErrors(errs), fields...)
	} else {
		logging.LogWarn(nil, msg, fields...)
	}
	env := apiinternal.NewErrorEnvelope[struct{}](code, msg)
	return &statusEnvelopeError{Envelope: env, status: status}
}

func joinErrors(errs []error) error {
	nonNil := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			nonNil = append(nonNil, err.Error())
		}
	}
	if len(nonNil) == 0 {
		return nil
	}
	return fmt.Errorf("%s", strings.Join(nonNil, "; "))
}

func statusCodeName(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return codeInternalServerErr
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

func messageOrDefault(status int, msg string) string {
	if msg != "" {
		return msg
	}
	if text := http.StatusText(status); text != "" {
		return strings.ToLower(text)
	}
	return msgInternalServerErr
}
