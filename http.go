package mroute

import (
	"net/http"

	"github.com/rohanthewiz/mroute/consts"
	"github.com/rohanthewiz/serr"
)

// ServeHTTP lets a Router be mounted directly on net/http, which plays
// the part of the surrounding server: it owns the wire, we route.
// The raw request URI (path plus query) is handed to Dispatch as-is so
// normalization applies end to end. Unmatched requests get an empty 404.
func (r *Router) ServeHTTP(w http.ResponseWriter, hr *http.Request) {
	req := &Request{Method: hr.Method, Path: hr.URL.RequestURI()}
	res := NewResponse()

	if !r.Dispatch(req, res) {
		w.WriteHeader(consts.StatusNotFound)
		return
	}

	w.WriteHeader(res.Status)
	_, _ = w.Write([]byte(res.Body))
}

// Serve starts a plain net/http server on the given address with the
// Router as its handler. It blocks until the server fails.
func (r *Router) Serve(address string) error {
	if err := http.ListenAndServe(address, r); err != nil {
		return serr.Wrap(err, "server stopped")
	}

	return nil
}
