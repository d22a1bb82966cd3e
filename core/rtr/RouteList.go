package rtr

// RouteList represents a registered route for debugging and inspection.
// The pattern text is kept verbatim as registered, so a route table can
// be printed or rendered without reverse-engineering compiled segments.
//
// This is primarily used for:
//   - Route table visualization
//   - Debugging overlapping routes
//   - Testing route registration
type RouteList struct {
	Method     string
	Path       string
	HandlerRef string
}
