// Package http drives a single connection through its whole lifecycle:
// parse, route, read the file, write the response, close. This is the body
// of the job the acceptor submits to the pool; the pool's recovery boundary
// is what stands between a bug here and a lost worker.
package http

import (
	"log"
	"os"
	"path/filepath"

	"github.com/hearth-web/hearth/http"
	"github.com/hearth-web/hearth/http/mime"
	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/internal/parser/http1"
	"github.com/hearth-web/hearth/internal/pathclean"
	"github.com/hearth-web/hearth/internal/server/tcp"
	"github.com/hearth-web/hearth/router"
	"github.com/hearth-web/hearth/settings"
)

const proto = "HTTP/1.1"

type Server struct {
	routes   *router.Table
	notFound string
	parser   settings.Parser
}

func NewServer(routes *router.Table, s settings.Settings) *Server {
	return &Server{
		routes:   routes,
		notFound: s.Pages.NotFound,
		parser:   s.Parser,
	}
}

// ServeConn handles exactly one request and closes the connection. Every
// failure past parsing degrades into a response; none of them may escape as
// a panic.
func (s *Server) ServeConn(client tcp.Client) {
	defer func() {
		_ = client.Close()
	}()

	request, err := http1.New(client, s.parser).Parse()
	if err != nil {
		s.write(client, http.NewResponse(proto, status.CodeOf(err)).
			ContentType(mime.Plain).
			String(err.Error()),
		)

		return
	}

	file, found := s.routes.Lookup(pathclean.Clean(request.Path))
	code := status.OK
	if !found {
		// a miss is not an error, it's the 404 page
		code, file = status.NotFound, s.notFound
	}

	contents, err := os.ReadFile(file)
	if err != nil {
		log.Printf("http: reading %s: %s", file, err)
		s.write(client, http.NewResponse(request.Proto, status.InternalServerError).
			ContentType(mime.Plain).
			String(status.ErrInternalServerError.Error()),
		)

		return
	}

	s.write(client, http.NewResponse(request.Proto, code).
		ContentType(mime.OfExtension(filepath.Ext(file))).
		Body(contents),
	)
}

// write sends the serialized response. A failed write means the client is
// gone; the connection is simply abandoned.
func (s *Server) write(client tcp.Client, response *http.Response) {
	if err := client.Write(response.Bytes()); err != nil {
		log.Printf("http: writing to %s: %s", client.Remote(), err)
	}
}
