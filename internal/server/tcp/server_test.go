package tcp

import (
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hearth-web/hearth/http/status"
	"github.com/hearth-web/hearth/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestServer(t *testing.T) {
	sock, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	workers, err := pool.New(2, 4)
	require.NoError(t, err)

	var served atomic.Int64
	server := NewServer(sock, workers, func(conn net.Conn) {
		served.Add(1)
		_ = conn.Close()
	})

	done := make(chan error)
	go func() {
		done <- server.Start()
	}()

	const conns = 5
	for i := 0; i < conns; i++ {
		conn, err := net.Dial("tcp", sock.Addr().String())
		require.NoError(t, err)

		// the remote side closes the connection once the job has run
		buff := make([]byte, 1)
		_, _ = conn.Read(buff)
		_ = conn.Close()
	}

	require.NoError(t, server.Stop())

	select {
	case err = <-done:
		require.ErrorIs(t, err, status.ErrShutdown)
	case <-time.After(5 * time.Second):
		t.Fatal("accept loop did not stop")
	}

	workers.Shutdown()
	require.EqualValues(t, conns, served.Load())
}
