package tcp

import (
	"net"
)

// Client is a stream with takeback support: data that was read but not
// consumed can be returned and will be served by the next Read call.
type Client interface {
	Read() ([]byte, error)
	Unread([]byte)
	Write([]byte) error
	Remote() net.Addr
	Close() error
}

type client struct {
	pending []byte
	buff    []byte
	conn    net.Conn
}

func NewClient(conn net.Conn, buff []byte) Client {
	return &client{
		buff: buff,
		conn: conn,
	}
}

func (c *client) Read() ([]byte, error) {
	if len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil

		return pending, nil
	}

	n, err := c.conn.Read(c.buff)

	return c.buff[:n], err
}

func (c *client) Unread(b []byte) {
	if len(b) > 0 {
		c.pending = b
	}
}

func (c *client) Write(b []byte) error {
	_, err := c.conn.Write(b)

	return err
}

func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *client) Close() error {
	return c.conn.Close()
}
