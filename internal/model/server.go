package model

import (
	"context"
	"net"
)

// SecurityLayer abstracts how the listening socket is created, so the server
// can run behind TLS or plain TCP without knowing which.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a transport server with a managed lifecycle.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
