package transport

import "errors"

var (
	// ErrClosed is returned by Call after Close has been called.
	ErrClosed = errors.New("transport closed")
	// ErrNotConnected is returned by Call while the transport is between
	// a lost connection and a successful redial.
	ErrNotConnected = errors.New("transport not connected")
	// ErrUnauthorized indicates the session login was rejected.
	ErrUnauthorized = errors.New("client unauthorized")
)

// ServerError carries an error message reported by the region controller in
// an RPC response. The message is propagated verbatim.
type ServerError struct {
	Method  string
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}
