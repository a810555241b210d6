// Package test has helpers for tests that need real network listeners.
package test

import (
	"net"
	"sync"
)

var (
	handed = map[int]struct{}{}
	mtx    sync.Mutex
)

// RandomPort reserves a free TCP port and returns its number. Ports already
// handed out in this process are skipped so parallel tests do not collide.
func RandomPort() int {
	l, _ := net.Listen("tcp", ":0") //nolint:gosec
	_ = l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	mtx.Lock()
	if _, ok := handed[port]; ok {
		mtx.Unlock()
		return RandomPort()
	}
	handed[port] = struct{}{}
	mtx.Unlock()
	return port
}
