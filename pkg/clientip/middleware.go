package clientip

import "net/http"

// Middleware resolves the client host once per request and stores it in the
// request context for downstream handlers.
func Middleware(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), Resolve(r, trustProxy))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
