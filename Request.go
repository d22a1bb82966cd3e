package mroute

// Params maps parameter names to the values extracted from the matched
// path. When a pattern reuses the same name in two positions, the later
// position's value wins; that is not an error.
type Params map[string]string

// Request carries what the router needs from an incoming request: the
// method, the raw path (query strings and leading/trailing slashes are
// fine; matching normalizes them away) and, after a successful
// dispatch, the extracted path parameters.
type Request struct {
	Method string
	Path   string

	// Params is populated by Dispatch for the winning route only.
	Params Params
}

// Param retrieves a path parameter, or "" when absent.
func (req *Request) Param(name string) string {
	return req.Params[name]
}
