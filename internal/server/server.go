package server

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"
)

// Server represents an HTTP server
type Server struct {
	srv     *http.Server
	tlsCert string
	tlsKey  string
	errs    chan error
}

// New creates a new server instance. WriteTimeout leaves room for the
// slowest lookup chain (search plus four enrichment calls).
func New(handler http.Handler, port, tlsCert, tlsKey string) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		tlsCert: tlsCert,
		tlsKey:  tlsKey,
		errs:    make(chan error, 1),
	}
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.srv.Addr
}

// TLS reports whether the server serves HTTPS
func (s *Server) TLS() bool {
	return s.tlsCert != "" && s.tlsKey != ""
}

// Start starts serving in the background. Listen failures are delivered on
// Errors.
func (s *Server) Start() {
	if s.TLS() {
		s.srv.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
		go s.serve(func() error { return s.srv.ListenAndServeTLS(s.tlsCert, s.tlsKey) })
		return
	}
	go s.serve(s.srv.ListenAndServe)
}

func (s *Server) serve(listen func() error) {
	if err := listen(); err != nil && err != http.ErrServerClosed {
		s.errs <- err
	}
}

// Errors reports a server that stopped for any reason other than Shutdown
func (s *Server) Errors() <-chan error {
	return s.errs
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
