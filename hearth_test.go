package hearth

import (
	"bufio"
	"io"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/hearth-web/hearth/router"
	"github.com/hearth-web/hearth/settings"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// startApp serves a tiny site on an ephemeral port and returns its address.
func startApp(t *testing.T) (*App, string) {
	t.Helper()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "index.html"), "<h1>Hi</h1>")
	touch(t, filepath.Join(dir, "not_found.html"), "nothing here")

	s := settings.Settings{}
	s.Pages.NotFound = filepath.Join(dir, "not_found.html")

	routes, err := router.FromDir(dir)
	require.NoError(t, err)

	started := make(chan struct{})
	app := New("127.0.0.1:0").
		Tune(s).
		NotifyOnStart(func() {
			close(started)
		})

	go func() {
		if err := app.Serve(routes); err != nil {
			t.Errorf("serve: %s", err)
		}
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	t.Cleanup(func() {
		_ = app.Stop()
	})

	return app, app.Addr().String()
}

// exchange sends one raw request over a fresh connection and returns
// everything the server responded with.
func exchange(t *testing.T, addr, raw string) string {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(raw))
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	response, err := io.ReadAll(bufio.NewReader(conn))
	require.NoError(t, err)

	return string(response)
}

func TestServe(t *testing.T) {
	_, addr := startApp(t)

	t.Run("GET root", func(t *testing.T) {
		response := exchange(t, addr, "GET / HTTP/1.1\r\nHost: localhost\r\n\r\n")

		require.True(t, strings.HasPrefix(response, "HTTP/1.1 200 OK\r\n"))
		require.Contains(t, response, "Content-Length: 11\r\n")
		require.True(t, strings.HasSuffix(response, "\r\n\r\n<h1>Hi</h1>"))
	})

	t.Run("traversal attempt gets 404", func(t *testing.T) {
		response := exchange(t, addr, "GET /../../etc/passwd HTTP/1.1\r\nHost: localhost\r\n\r\n")

		require.True(t, strings.HasPrefix(response, "HTTP/1.1 404 Not Found\r\n"))
		require.True(t, strings.HasSuffix(response, "nothing here"))
	})

	t.Run("garbage then a well-formed request", func(t *testing.T) {
		response := exchange(t, addr, "GARBAGE\r\n\r\n")
		require.True(t, strings.HasPrefix(response, "HTTP/1.1 400 Bad Request\r\n"))

		// the server must survive malformed input and keep serving
		response = exchange(t, addr, "GET / HTTP/1.1\r\nHost: localhost\r\n\r\n")
		require.True(t, strings.HasPrefix(response, "HTTP/1.1 200 OK\r\n"))
	})

	t.Run("concurrent connections", func(t *testing.T) {
		results := make(chan string, 16)

		for i := 0; i < cap(results); i++ {
			go func() {
				results <- exchange(t, addr, "GET / HTTP/1.1\r\nHost: localhost\r\n\r\n")
			}()
		}

		for i := 0; i < cap(results); i++ {
			require.True(t, strings.HasPrefix(<-results, "HTTP/1.1 200 OK\r\n"))
		}
	})
}

func TestServeBindFailure(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	before := runtime.NumGoroutine()

	app := New(occupied.Addr().String())
	require.Error(t, app.Serve(router.New(nil)))

	// the workers spawned before the bind attempt must be gone again
	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 5*time.Second, 10*time.Millisecond)
}

func TestServeRejectsBadPoolSize(t *testing.T) {
	app := New("127.0.0.1:0").Tune(settings.Settings{
		Pool: settings.Pool{Workers: -1},
	})

	require.Error(t, app.Serve(router.New(nil)))
}
