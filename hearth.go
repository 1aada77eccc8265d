// Package hearth is a minimal HTTP/1.1 static file server. Connections are
// accepted on a single loop and dispatched to a fixed pool of workers; each
// connection carries exactly one request/response exchange against an
// immutable route table.
package hearth

import (
	"errors"
	"fmt"
	"net"

	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/internal/pool"
	httpserver "github.com/hearth-web/hearth/internal/server/http"
	"github.com/hearth-web/hearth/internal/server/tcp"
	"github.com/hearth-web/hearth/router"
	"github.com/hearth-web/hearth/settings"
)

type App struct {
	addr     string
	settings settings.Settings
	onStart  func()
	sock     net.Listener
	srv      *tcp.Server
}

// New returns a new App instance listening on addr once served.
func New(addr string) *App {
	return &App{
		addr:     addr,
		settings: settings.Default(),
	}
}

// Tune replaces default settings. Zero fields are filled back with defaults.
func (a *App) Tune(s settings.Settings) *App {
	a.settings = settings.Fill(s)
	return a
}

// NotifyOnStart calls the callback at the moment the listener is bound and
// the workers are up, right before accepting begins.
func (a *App) NotifyOnStart(cb func()) *App {
	a.onStart = cb
	return a
}

// Serve blocks running the server until Stop is called or the listener
// fails. The only process-fatal conditions are an invalid pool size and a
// failure to bind; everything that happens later is contained to the
// affected connection.
func (a *App) Serve(routes *router.Table) error {
	workers, err := pool.New(a.settings.Pool.Workers, a.settings.Pool.QueueSize)
	if err != nil {
		return err
	}

	a.sock, err = net.Listen("tcp", a.addr)
	if err != nil {
		workers.Shutdown()
		return fmt.Errorf("hearth: listen %s: %w", a.addr, err)
	}

	handler := httpserver.NewServer(routes, a.settings)
	a.srv = tcp.NewServer(a.sock, workers, func(conn net.Conn) {
		client := tcp.NewClient(conn, make([]byte, a.settings.TCP.ReadBufferSize))
		handler.ServeConn(client)
	})

	if a.onStart != nil {
		a.onStart()
	}

	err = a.srv.Start()
	// the listener is down; let the in-flight jobs finish before returning
	workers.Shutdown()

	if errors.Is(err, status.ErrShutdown) {
		return nil
	}

	return err
}

// Addr reports the bound address. Useful when serving on port 0.
func (a *App) Addr() net.Addr {
	if a.sock == nil {
		return nil
	}

	return a.sock.Addr()
}

// Stop closes the listener. Serve drains the pool and returns afterwards.
// The call isn't blocking.
func (a *App) Stop() error {
	if a.srv == nil {
		return nil
	}

	return a.srv.Stop()
}
