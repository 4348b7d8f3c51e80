// Package server binds the HTTP listener for the API.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
)

// ErrNoPortAvailable is returned when every candidate port is taken
var ErrNoPortAvailable = errors.New("no candidate port available")

// Listen binds the first free port from ports, in order. A port that is
// already in use is logged and skipped.
func Listen(host string, ports []int, logger *slog.Logger) (net.Listener, error) {
	var lastErr error
	for _, port := range ports {
		addr := net.JoinHostPort(host, strconv.Itoa(port))
		ln, err := net.Listen("tcp", addr)
		if err == nil {
			return ln, nil
		}
		if logger != nil {
			logger.Warn("port unavailable, trying next", "addr", addr, "error", err)
		}
		lastErr = err
	}
	if lastErr == nil {
		return nil, ErrNoPortAvailable
	}
	return nil, fmt.Errorf("%w: %v", ErrNoPortAvailable, lastErr)
}

// Port reports the TCP port a listener is bound to.
func Port(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
