//go:build unix

package web

import (
	"crypto/tls"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/log"
)

// CertReloader serves the HTTPS listener's certificate and swaps it in
// place when the process receives SIGHUP, so certificates can rotate
// without dropping connections.
type CertReloader struct {
	certMu   sync.RWMutex
	cert     *tls.Certificate
	certPath string
	keyPath  string
}

// NewCertReloader loads the key pair and starts watching for SIGHUP.
func NewCertReloader(certPath, keyPath string, logger *log.Logger) (*CertReloader, error) {
	reloader := &CertReloader{
		certPath: certPath,
		keyPath:  keyPath,
	}

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	reloader.cert = &cert

	go func() {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		for range hup {
			logger.Info("reloading TLS certificate and key", "cert", certPath, "key", keyPath)
			if err := reloader.reload(); err != nil {
				logger.Error("could not reload TLS certificate, keeping the old one", "err", err)
			}
		}
	}()

	return reloader, nil
}

// reload re-reads the key pair from disk. The old certificate stays in
// effect if loading fails.
func (cr *CertReloader) reload() error {
	newCert, err := tls.LoadX509KeyPair(cr.certPath, cr.keyPath)
	if err != nil {
		return err //nolint:wrapcheck
	}

	cr.certMu.Lock()
	defer cr.certMu.Unlock()
	cr.cert = &newCert
	return nil
}

// GetCertificateFunc returns the callback for tls.Config.GetCertificate.
func (cr *CertReloader) GetCertificateFunc() func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	return func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
		cr.certMu.RLock()
		defer cr.certMu.RUnlock()
		return cr.cert, nil
	}
}
