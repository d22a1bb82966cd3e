package mroute

import (
	"github.com/rohanthewiz/mroute/consts"
)

// Response is the minimal response shape handlers write into: a status
// code and a body. The router never reads or writes a Response itself;
// only the invoked handler does. Headers, serialization and the wire
// belong to the surrounding server.
type Response struct {
	Status int
	Body   string
}

// NewResponse returns a Response with the default 200 status.
func NewResponse() *Response {
	return &Response{Status: consts.StatusOK}
}

// SetStatus sets the HTTP status code.
func (res *Response) SetStatus(status int) {
	res.Status = status
}

// Write appends the raw bytes to the response body.
// It implements io.Writer.
func (res *Response) Write(body []byte) (int, error) {
	res.Body += string(body)
	return len(body), nil
}

// WriteString appends the given string to the response body.
// It implements io.StringWriter.
func (res *Response) WriteString(body string) (int, error) {
	res.Body += body
	return len(body), nil
}
