package http1

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/hearth-web/hearth/http"
	"github.com/hearth-web/hearth/http/headers"
	"github.com/hearth-web/hearth/http/method"
	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/internal/server/tcp"
	"github.com/hearth-web/hearth/settings"
	"github.com/indigo-web/utils/arena"
	"github.com/indigo-web/utils/uf"
)

const proto11 = "HTTP/1.1"

// Parser reads exactly one request off a connection: a request line, header
// lines up to an empty one, then a body if (and only if) Content-Length
// declares one. Header strings reference the internal arena, so they stay
// valid for as long as the parser itself does, which matches the lifetime of
// a connection's job.
type Parser struct {
	client        tcp.Client
	head          arena.Arena[byte]
	maxLineLength int
}

func New(client tcp.Client, s settings.Parser) *Parser {
	return &Parser{
		client:        client,
		head:          *arena.NewArena[byte](s.HeadBuffer.Default, s.HeadBuffer.Maximal),
		maxLineLength: s.MaxLineLength,
	}
}

// Parse returns either a fully constructed request or an error. There is no
// in-between: any failure, including an underlying I/O one, discards
// everything parsed so far.
func (p *Parser) Parse() (*http.Request, error) {
	request := http.NewRequest(headers.New())

	line, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if err = parseRequestLine(line, request); err != nil {
		return nil, err
	}

	for {
		line, err = p.readLine()
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			break
		}

		key, value, err := cutHeaderLine(line)
		if err != nil {
			return nil, err
		}

		request.Headers.Set(key, value)
	}

	if request.Proto == proto11 && !request.Headers.Has("Host") {
		return nil, status.ErrMissingHostHeader
	}

	if value, found := request.ContentLength(); found {
		length, err := strconv.Atoi(value)
		if err != nil || length < 0 {
			return nil, status.ErrBadContentLength
		}

		if request.Body, err = p.readBody(length); err != nil {
			return nil, err
		}
	}

	return request, nil
}

// readLine accumulates data until a LF, gives the unconsumed tail back to the
// client and returns the line without its line break. A line longer than
// maxLineLength, as well as a head outgrowing the arena, aborts parsing.
func (p *Parser) readLine() (string, error) {
	for {
		data, err := p.client.Read()
		if err != nil {
			return "", fmt.Errorf("%w: %s", status.ErrReadFailure, err)
		}

		lf := bytes.IndexByte(data, '\n')
		if lf == -1 {
			if !p.head.Append(data...) {
				return "", status.ErrHeaderTooLong
			}
			if p.head.SegmentLength() > p.maxLineLength {
				return "", status.ErrHeaderTooLong
			}

			continue
		}

		p.client.Unread(data[lf+1:])

		if !p.head.Append(data[:lf]...) {
			return "", status.ErrHeaderTooLong
		}

		line := p.head.Finish()
		if len(line) > p.maxLineLength {
			return "", status.ErrHeaderTooLong
		}
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}

		return uf.B2S(line), nil
	}
}

func (p *Parser) readBody(length int) ([]byte, error) {
	body := make([]byte, 0, length)

	for len(body) < length {
		data, err := p.client.Read()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", status.ErrReadFailure, err)
		}

		if need := length - len(body); len(data) > need {
			p.client.Unread(data[need:])
			data = data[:need]
		}

		body = append(body, data...)
	}

	return body, nil
}

// parseRequestLine recognizes `METHOD SP TARGET SP PROTO`. The method
// vocabulary is closed, unknown tokens are rejected right here instead of
// being passed downstream.
func parseRequestLine(line string, request *http.Request) error {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return status.ErrMalformedRequestLine
	}

	request.Method = method.Parse(tokens[0])
	if request.Method == method.Unknown {
		return status.ErrMalformedRequestLine
	}

	request.Path = tokens[1]
	request.Proto = tokens[2]

	return nil
}

func cutHeaderLine(line string) (key, value string, err error) {
	colon := strings.IndexByte(line, ':')
	if colon < 1 {
		return "", "", status.ErrMalformedHeader
	}

	return line[:colon], strings.TrimSpace(line[colon+1:]), nil
}
