package mroute

import (
	"path"
)

// Group registers routes under a common URL prefix (e.g. /api/v1).
// Groups can be nested to build hierarchical route structures; prefixes
// compose with path.Join.
type Group struct {
	prefix string
	router *Router
}

// Group creates a route group on the router with the given prefix.
func (r *Router) Group(prefix string) *Group {
	return &Group{prefix: prefix, router: r}
}

// Group creates a sub-group with an additional prefix.
func (g *Group) Group(prefix string) *Group {
	return &Group{prefix: path.Join(g.prefix, prefix), router: g.router}
}

// Add registers a handler under the group prefix, returning the Group
// for chaining.
func (g *Group) Add(method string, pattern string, handler Handler) *Group {
	// The leading "/" keeps the joined pattern rooted even when the
	// group was created with a bare prefix.
	g.router.Add(method, path.Join("/", g.prefix, pattern), handler)
	return g
}

// Any registers a handler matching every request method under the group prefix.
func (g *Group) Any(pattern string, handler Handler) *Group {
	return g.Add("*", pattern, handler)
}

// Get registers a GET route under the group prefix.
func (g *Group) Get(pattern string, handler Handler) *Group {
	return g.Add("GET", pattern, handler)
}

// Post registers a POST route under the group prefix.
func (g *Group) Post(pattern string, handler Handler) *Group {
	return g.Add("POST", pattern, handler)
}

// Put registers a PUT route under the group prefix.
func (g *Group) Put(pattern string, handler Handler) *Group {
	return g.Add("PUT", pattern, handler)
}

// Patch registers a PATCH route under the group prefix.
func (g *Group) Patch(pattern string, handler Handler) *Group {
	return g.Add("PATCH", pattern, handler)
}

// Delete registers a DELETE route under the group prefix.
func (g *Group) Delete(pattern string, handler Handler) *Group {
	return g.Add("DELETE", pattern, handler)
}

// Head registers a HEAD route under the group prefix.
func (g *Group) Head(pattern string, handler Handler) *Group {
	return g.Add("HEAD", pattern, handler)
}

// Options registers an OPTIONS route under the group prefix.
func (g *Group) Options(pattern string, handler Handler) *Group {
	return g.Add("OPTIONS", pattern, handler)
}
