// Package dummy provides in-memory Client implementations for tests.
package dummy

import (
	"io"
	"net"
)

// Client feeds pre-defined chunks of data, one per Read call, and records
// everything written into it. Once the chunks run out, Read reports io.EOF.
type Client struct {
	pending []byte
	data    [][]byte
	pointer int
	written []byte
	closed  bool
}

func NewClient(data ...[]byte) *Client {
	return &Client{
		data: data,
	}
}

func (c *Client) Read() ([]byte, error) {
	if c.closed {
		return nil, io.EOF
	}

	if len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil

		return pending, nil
	}

	if c.pointer == len(c.data) {
		return nil, io.EOF
	}

	chunk := c.data[c.pointer]
	c.pointer++

	return chunk, nil
}

func (c *Client) Unread(takeback []byte) {
	if len(takeback) > 0 {
		c.pending = takeback
	}
}

func (c *Client) Write(b []byte) error {
	c.written = append(c.written, b...)
	return nil
}

// Written returns everything the tested code has sent so far.
func (c *Client) Written() []byte {
	return c.written
}

func (c *Client) Remote() net.Addr {
	return &net.TCPAddr{}
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

func (c *Client) Closed() bool {
	return c.closed
}
