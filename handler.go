package coderland

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/coderland/pkg/clientip"
	"github.com/dmitrymomot/coderland/pkg/logger"
	"github.com/dmitrymomot/coderland/pkg/requestid"
)

// Handler returns the main listener's handler: every method and path,
// including ones no router would normally accept, reaches the greeting.
func (a *App) Handler() http.Handler {
	greet := http.HandlerFunc(a.greet)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware(),
		clientip.Middleware(a.opts.trustProxy),
	)
	r.Handle("/*", greet)
	r.NotFound(greet)
	r.MethodNotAllowed(greet)
	return r
}

func (a *App) greet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	host := clientip.FromContext(ctx)
	if host == "" {
		host = clientip.Resolve(r, a.opts.trustProxy)
	}

	a.gate.RLock()
	if !a.closed {
		n := a.served.Add(1)
		a.metrics.requests.Inc()
		a.log.InfoContext(ctx, fmt.Sprintf("Request #%d from %s", n, host),
			logger.RequestNumber(n),
			logger.RemoteHost(host),
		)
	}
	a.gate.RUnlock()

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Greeting))
}
