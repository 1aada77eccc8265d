package dummy

import (
	"errors"
	"net"
)

var ErrBroken = errors.New("connection reset by peer")

// BrokenClient fails every operation. Used for exercising I/O error paths.
type BrokenClient struct{}

func NewBrokenClient() BrokenClient {
	return BrokenClient{}
}

func (BrokenClient) Read() ([]byte, error) {
	return nil, ErrBroken
}

func (BrokenClient) Unread([]byte) {}

func (BrokenClient) Write([]byte) error {
	return ErrBroken
}

func (BrokenClient) Remote() net.Addr {
	return &net.TCPAddr{}
}

func (BrokenClient) Close() error {
	return nil
}
