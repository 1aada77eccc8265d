package http

import (
	"strconv"

	"github.com/hearth-web/hearth/http/headers"
	"github.com/hearth-web/hearth/http/mime"
	"github.com/hearth-web/hearth/http/status"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// why 7? I don't know. There's no theory behind this number nor researches.
const preallocRespHeaders = 7

// Response is a buildable response message. The Content-Length header is
// never stored: it is derived from the body on every serialization, so there
// is no way to produce a stale or mismatching value.
type Response struct {
	proto   string
	code    status.Code
	headers *headers.Headers
	body    []byte
}

// NewResponse returns a new response with the status text derived from the
// code. Codes outside of the table are legal and serialize with a generic
// status text.
func NewResponse(proto string, code status.Code) *Response {
	return &Response{
		proto:   proto,
		code:    code,
		headers: headers.NewPrealloc(preallocRespHeaders),
	}
}

// Code replaces the response code.
func (r *Response) Code(code status.Code) *Response {
	r.code = code
	return r
}

// Header sets a header value, overwriting the previous one on repeat.
// Content-Length is silently discarded here, as it is always computed from
// the body.
func (r *Response) Header(key, value string) *Response {
	if strcomp.EqualFold(key, "content-length") {
		return r
	}

	r.headers.Set(key, value)
	return r
}

// ContentType sets the Content-Type header.
func (r *Response) ContentType(m mime.MIME) *Response {
	return r.Header("Content-Type", m)
}

// Body sets the response's body to the passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself.
func (r *Response) Body(body []byte) *Response {
	r.body = body
	return r
}

// String sets the response's body to the passed string.
func (r *Response) String(body string) *Response {
	return r.Body(uf.S2B(body))
}

// Bytes serializes the response into its wire form:
// proto, code and status text, headers in insertion order, a derived
// Content-Length, an empty line, then the body verbatim. The method is
// idempotent.
func (r *Response) Bytes() []byte {
	buff := make([]byte, 0, r.sizeHint())

	buff = append(buff, r.proto...)
	buff = append(buff, ' ')
	buff = strconv.AppendUint(buff, uint64(r.code), 10)
	buff = append(buff, ' ')
	buff = append(buff, status.Text(r.code)...)
	buff = append(buff, '\r', '\n')

	for _, pair := range r.headers.Unwrap() {
		buff = append(buff, pair.Key...)
		buff = append(buff, ':', ' ')
		buff = append(buff, pair.Value...)
		buff = append(buff, '\r', '\n')
	}

	buff = append(buff, "Content-Length: "...)
	buff = strconv.AppendInt(buff, int64(len(r.body)), 10)
	buff = append(buff, '\r', '\n', '\r', '\n')
	buff = append(buff, r.body...)

	return buff
}

func (r *Response) sizeHint() int {
	// 64 covers the response line and the Content-Length header, 40 is a
	// rough per-header estimation
	return 64 + r.headers.Len()*40 + len(r.body)
}
