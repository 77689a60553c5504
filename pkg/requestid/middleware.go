package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
	idPattern   = "^[a-zA-Z0-9_-]+$"
)

var validIDRegex = regexp.MustCompile(idPattern)

// Option configures Middleware.
type Option func(*options)

type options struct {
	echo      bool
	generator func() string
}

// WithEcho writes the chosen id back in the X-Request-ID response header.
// Off by default: responses carry no headers beyond what net/http adds.
func WithEcho() Option {
	return func(o *options) { o.echo = true }
}

// WithGenerator replaces the UUIDv4 generator. A nil generator is ignored.
func WithGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.generator = fn
		}
	}
}

// Middleware attaches a request id to every request context. A valid
// client-supplied X-Request-ID is reused; otherwise a new one is generated.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := &options{generator: uuid.NewString}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(Header)
			if !isValidRequestID(requestID) {
				requestID = o.generator()
			}
			if o.echo {
				w.Header().Set(Header, requestID)
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), requestID)))
		})
	}
}

func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
