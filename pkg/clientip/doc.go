// Package clientip resolves the address of the client that sent an
// *http.Request.
//
// By default the TCP peer address (RemoteAddr) is used. When the server runs
// behind trusted reverse proxies, proxy headers can be honoured instead, in
// descending priority:
//
//  1. CF-Connecting-IP  – Cloudflare
//  2. DO-Connecting-IP  – DigitalOcean App Platform
//  3. X-Forwarded-For   – comma-separated list (the first valid IP is used)
//  4. X-Real-IP         – set by reverse proxies such as Nginx
//
// Never trust these headers on a listener that is reachable directly: any
// client can set them.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Use(clientip.Middleware(false))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    host := clientip.FromContext(r.Context())
//	    ...
//	})
package clientip
