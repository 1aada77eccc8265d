package http

import (
	"strings"
	"testing"

	"github.com/hearth-web/hearth/http/mime"
	"github.com/hearth-web/hearth/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("no body", func(t *testing.T) {
		resp := NewResponse("HTTP/1.1", status.OK).
			Header("Test_Header", "Test_Value")

		want := "HTTP/1.1 200 OK\r\nTest_Header: Test_Value\r\nContent-Length: 0\r\n\r\n"
		require.Equal(t, want, string(resp.Bytes()))
	})

	t.Run("content-length is derived from body", func(t *testing.T) {
		resp := NewResponse("HTTP/1.1", status.OK).
			String("<h1>Hi</h1>")

		want := "HTTP/1.1 200 OK\r\nContent-Length: 11\r\n\r\n<h1>Hi</h1>"
		require.Equal(t, want, string(resp.Bytes()))
	})

	t.Run("serialization is idempotent", func(t *testing.T) {
		resp := NewResponse("HTTP/1.1", status.NotFound).
			ContentType(mime.HTML).
			String("gone")

		first := string(resp.Bytes())
		second := string(resp.Bytes())
		require.Equal(t, first, second)
	})

	t.Run("replacing the body recomputes the length", func(t *testing.T) {
		resp := NewResponse("HTTP/1.1", status.OK).String("a longer body")
		resp.String("tiny")

		require.Contains(t, string(resp.Bytes()), "Content-Length: 4\r\n")
	})

	t.Run("manual content-length is discarded", func(t *testing.T) {
		resp := NewResponse("HTTP/1.1", status.OK).
			Header("Content-Length", "9000").
			String("four")

		serialized := string(resp.Bytes())
		require.Equal(t, 1, strings.Count(serialized, "Content-Length"))
		require.Contains(t, serialized, "Content-Length: 4\r\n")
	})

	t.Run("header overwrites on repeat", func(t *testing.T) {
		resp := NewResponse("HTTP/1.1", status.OK).
			Header("X-Flavour", "vanilla").
			Header("x-flavour", "chocolate")

		serialized := string(resp.Bytes())
		require.Equal(t, 1, strings.Count(serialized, "X-Flavour"))
		require.Contains(t, serialized, "X-Flavour: chocolate\r\n")
	})

	t.Run("unknown code gets a generic status text", func(t *testing.T) {
		resp := NewResponse("HTTP/1.1", 218)

		require.True(t, strings.HasPrefix(
			string(resp.Bytes()), "HTTP/1.1 218 Unknown Status Code\r\n",
		))
	})
}
