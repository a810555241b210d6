//go:build !unix

package web

import (
	"crypto/tls"
	"sync"

	"github.com/charmbracelet/log"
)

// CertReloader serves the HTTPS listener's certificate. On platforms
// without SIGHUP the certificate is loaded once and never rotated.
type CertReloader struct {
	certMu   sync.RWMutex
	cert     *tls.Certificate
	certPath string
	keyPath  string
}

// NewCertReloader loads the key pair.
func NewCertReloader(certPath, keyPath string, _ *log.Logger) (*CertReloader, error) {
	reloader := &CertReloader{
		certPath: certPath,
		keyPath:  keyPath,
	}

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	reloader.cert = &cert

	return reloader, nil
}

// GetCertificateFunc returns the callback for tls.Config.GetCertificate.
func (cr *CertReloader) GetCertificateFunc() func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	return func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
		cr.certMu.RLock()
		defer cr.certMu.RUnlock()
		return cr.cert, nil
	}
}
