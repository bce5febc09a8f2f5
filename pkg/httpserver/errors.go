package httpserver

import "errors"

var (
	ErrListen   = errors.New("httpserver: cannot bind address")
	ErrServe    = errors.New("httpserver: serving stopped unexpectedly")
	ErrShutdown = errors.New("httpserver: in-flight requests did not drain")
)
