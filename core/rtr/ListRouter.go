package rtr

import (
	"fmt"
	"strings"

	"github.com/rohanthewiz/mroute/consts"
)

// route is one registered entry: the method selector, the original
// pattern text (kept for introspection only), the compiled segments and
// the handler payload.
type route[T any] struct {
	method   string
	pattern  string
	segments []Segment
	handler  T
}

// ListRouter is an ordered, first-match-wins router.
//
// Routes are evaluated in registration order; the first route whose
// method, segment count and segment contents all accept the request
// wins, and no later route is examined. Registration order is the sole
// tie-break between structurally overlapping routes.
//
// The route list is meant to be fully populated before concurrent
// lookups begin. Lookups only read, so a frozen ListRouter is safe to
// share across goroutines without locking; Add concurrent with lookups
// is not.
type ListRouter[T any] struct {
	routes []route[T]
}

// NewListRouter creates an empty list router.
func NewListRouter[T any]() *ListRouter[T] {
	return &ListRouter[T]{}
}

// Add compiles the pattern and appends a new route. It never fails:
// any string is an acceptable pattern (malformed parameter tokens
// degrade to static literals, see ParsePattern).
func (lr *ListRouter[T]) Add(method string, pattern string, handler T) {
	lr.routes = append(lr.routes, route[T]{
		method:   method,
		pattern:  pattern,
		segments: ParsePattern(pattern),
		handler:  handler,
	})
}

// Lookup finds the handler and parameters for the given method and
// path. Parameters are returned in route-definition order and only for
// the winning route; candidates that fail partway contribute nothing.
func (lr *ListRouter[T]) Lookup(method string, path string) (handler T, params []Parameter, found bool) {
	handler, found = lr.LookupNoAlloc(method, path, func(key string, value string) {
		params = append(params, Parameter{Key: key, Value: value})
	})

	return
}

// LookupNoAlloc finds the handler for the given method and path without
// allocating. addParameter is called once per parameter segment of the
// winning route, in definition order.
func (lr *ListRouter[T]) LookupNoAlloc(method string, path string, addParameter func(key string, value string)) (handler T, found bool) {
	p := normalize(path)

	for i := range lr.routes {
		rt := &lr.routes[i]

		if rt.method != consts.MethodAny && rt.method != method {
			continue
		}

		if matchSegments(rt.segments, p, addParameter) {
			return rt.handler, true
		}
	}

	return handler, false
}

// Len returns the number of registered routes.
func (lr *ListRouter[T]) Len() int {
	return len(lr.routes)
}

// ListRoutes dumps the route table in registration order.
func (lr *ListRouter[T]) ListRoutes() (routes []RouteList) {
	for i := range lr.routes {
		rt := &lr.routes[i]
		routes = append(routes, RouteList{
			Method:     rt.method,
			Path:       rt.pattern,
			HandlerRef: fmt.Sprintf("%v", rt.handler),
		})
	}

	return
}

// Map replaces every handler payload with the result of transform.
// Useful for decorating handlers after registration, before the router
// is frozen for serving.
func (lr *ListRouter[T]) Map(transform func(T) T) {
	for i := range lr.routes {
		lr.routes[i].handler = transform(lr.routes[i].handler)
	}
}

// matchSegments compares a normalized path against compiled segments.
// The first pass checks shape and static text; parameters are emitted
// in a second pass only once the route has fully matched, so a failing
// candidate never reports partial bindings.
func matchSegments(segments []Segment, path string, emit func(key string, value string)) bool {
	if path == "" {
		return len(segments) == 0
	}

	i := 0
	for s := range segments {
		if i < 0 {
			return false // fewer tokens than segments
		}

		token, next := cutToken(path, i)
		if segments[s].Kind == KindStatic && segments[s].Text != token {
			return false
		}
		i = next
	}

	if i >= 0 {
		return false // more tokens than segments
	}

	if emit == nil {
		return true
	}

	i = 0
	for s := range segments {
		token, next := cutToken(path, i)
		if segments[s].Kind == KindParam {
			emit(segments[s].Text, token)
		}
		i = next
	}

	return true
}

// cutToken returns the token beginning at i and the start index of the
// next token, or -1 when this token is the last one.
func cutToken(path string, i int) (string, int) {
	if j := strings.IndexByte(path[i:], '/'); j != -1 {
		return path[i : i+j], i + j + 1
	}

	return path[i:], -1
}
