package rtr

// Parameter represents a URL parameter extracted from dynamic route segments.
//
// Example:
//   Route: /user/:id/posts/:postId
//   URL:   /user/123/posts/456
//   Result: []Parameter{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
//
// The slice preserves the order of parameters in the route definition.
// Callers wanting map semantics fold it themselves; when a route reuses
// a name, the later position wins in the folded map.
type Parameter struct {
	Key   string
	Value string
}
