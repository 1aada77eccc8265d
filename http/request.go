package http

import (
	"github.com/hearth-web/hearth/http/headers"
	"github.com/hearth-web/hearth/http/method"
)

// Request is a single parsed request. It is constructed by the parser once
// per connection and must not be modified afterwards.
type Request struct {
	Method  method.Method
	Path    string
	Proto   string
	Headers *headers.Headers
	Body    []byte
}

func NewRequest(hdrs *headers.Headers) *Request {
	return &Request{
		Headers: hdrs,
	}
}

// ContentLength reports the declared body length. Absence of the header
// means the request carries no body at all.
func (r *Request) ContentLength() (string, bool) {
	return r.Headers.Get("Content-Length")
}
