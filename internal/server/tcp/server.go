package tcp

import (
	"errors"
	"log"
	"net"

	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/internal/pool"
)

type onConnection func(net.Conn)

// Server owns the accept loop. It never touches request data itself: every
// accepted connection is packed into a job and handed to the worker pool.
type Server struct {
	sock     net.Listener
	workers  *pool.Pool
	onConn   onConnection
	shutdown bool
}

func NewServer(sock net.Listener, workers *pool.Pool, onConn onConnection) *Server {
	return &Server{
		sock:    sock,
		workers: workers,
		onConn:  onConn,
	}
}

// Start blocks serving the listener until it is closed. Transient accept
// errors and rejected submissions are logged and cost at most one
// connection, they never bring the loop down.
func (s *Server) Start() error {
	for {
		conn, err := s.sock.Accept()
		if err != nil {
			if s.shutdown || errors.Is(err, net.ErrClosed) {
				return status.ErrShutdown
			}

			log.Printf("tcp: accept: %s", err)
			continue
		}

		job := func() {
			s.onConn(conn)
		}

		if err = s.workers.Execute(job); err != nil {
			log.Printf("tcp: dispatch: %s", err)
			_ = conn.Close()
		}
	}
}

// Stop closes the listener. In-flight connections are left to the pool to
// finish.
func (s *Server) Stop() error {
	s.shutdown = true
	return s.sock.Close()
}
