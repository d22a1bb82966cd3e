package mroute

import (
	"github.com/rohanthewiz/mroute/consts"
	"github.com/rohanthewiz/mroute/core/rtr"
)

// Handler is the capability stored per route. Handlers mutate the
// response in place; there is no return value and no error path.
type Handler func(req *Request, res *Response)

// Router matches (method, path) pairs against registered patterns in
// registration order and dispatches to the first full match.
//
// Populate the route table fully before sharing the Router across
// goroutines. Match and Dispatch only read, so a frozen Router needs no
// locking; Add concurrent with matching is undefined.
type Router struct {
	routes *rtr.ListRouter[Handler]
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{routes: rtr.NewListRouter[Handler]()}
}

// Add registers a handler for the given method and pattern, returning
// the Router for chaining. Registration never fails: any pattern string
// is accepted (malformed parameter tokens degrade to static literals).
func (r *Router) Add(method string, pattern string, handler Handler) *Router {
	r.routes.Add(method, pattern, handler)
	return r
}

// Any registers a handler matching every request method.
func (r *Router) Any(pattern string, handler Handler) *Router {
	return r.Add(consts.MethodAny, pattern, handler)
}

// Get registers a handler for GET requests on the given pattern.
func (r *Router) Get(pattern string, handler Handler) *Router {
	return r.Add(consts.MethodGet, pattern, handler)
}

// Post registers a handler for POST requests on the given pattern.
func (r *Router) Post(pattern string, handler Handler) *Router {
	return r.Add(consts.MethodPost, pattern, handler)
}

// Put registers a handler for PUT requests on the given pattern.
func (r *Router) Put(pattern string, handler Handler) *Router {
	return r.Add(consts.MethodPut, pattern, handler)
}

// Patch registers a handler for PATCH requests on the given pattern.
func (r *Router) Patch(pattern string, handler Handler) *Router {
	return r.Add(consts.MethodPatch, pattern, handler)
}

// Delete registers a handler for DELETE requests on the given pattern.
func (r *Router) Delete(pattern string, handler Handler) *Router {
	return r.Add(consts.MethodDelete, pattern, handler)
}

// Head registers a handler for HEAD requests on the given pattern.
func (r *Router) Head(pattern string, handler Handler) *Router {
	return r.Add(consts.MethodHead, pattern, handler)
}

// Options registers a handler for OPTIONS requests on the given pattern.
func (r *Router) Options(pattern string, handler Handler) *Router {
	return r.Add(consts.MethodOptions, pattern, handler)
}

// Match scans routes in registration order and returns the first full
// match's handler and parameters. A miss is a routine outcome reported
// through found, never an error. On a match, params holds exactly the
// winning route's parameter bindings (possibly empty, never nil).
func (r *Router) Match(method string, path string) (handler Handler, params Params, found bool) {
	handler, found = r.routes.LookupNoAlloc(method, path, func(key string, value string) {
		if params == nil {
			params = make(Params)
		}
		params[key] = value
	})

	if !found {
		return nil, nil, false
	}

	if params == nil {
		params = Params{}
	}

	return handler, params, true
}

// Dispatch matches the request and, on success, binds the extracted
// parameters onto req and invokes the handler with the shared req/res
// pair. On a miss, req and res are left untouched; translating that
// into a 404 (or anything else) is the caller's decision.
func (r *Router) Dispatch(req *Request, res *Response) bool {
	handler, params, found := r.Match(req.Method, req.Path)
	if !found {
		return false
	}

	req.Params = params
	handler(req, res)

	return true
}

// Size returns the number of registered routes.
func (r *Router) Size() int {
	return r.routes.Len()
}

// ListRoutes dumps the route table in registration order.
func (r *Router) ListRoutes() []rtr.RouteList {
	return r.routes.ListRoutes()
}

// Map wraps or replaces every registered handler. Meant for setup-time
// decoration, before the Router is frozen for serving.
func (r *Router) Map(transform func(Handler) Handler) {
	r.routes.Map(transform)
}
