package consts

// HTTP methods known to the router.
// MethodAny is a registration-side wildcard: a route registered with it
// matches every request method. It is never a legal incoming method.
const (
	MethodAny     = "*"
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
)

const (
	StatusOK       = 200
	StatusCreated  = 201
	StatusNotFound = 404
)
