package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New(http.NotFoundHandler(), "8080", "", "")
	assert.Equal(t, ":8080", s.Addr())
	assert.False(t, s.TLS())

	s = New(http.NotFoundHandler(), "8443", "cert.pem", "key.pem")
	assert.True(t, s.TLS())
}

func TestStartReportsListenErrors(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	s := New(http.NotFoundHandler(), port, "", "")
	s.srv.Addr = "127.0.0.1:" + port
	s.Start()

	select {
	case err := <-s.Errors():
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a listen error for a port already in use")
	}
}

func TestShutdown(t *testing.T) {
	s := New(http.NotFoundHandler(), "0", "", "")
	s.srv.Addr = "127.0.0.1:0"
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-s.Errors():
		t.Fatalf("unexpected server error: %v", err)
	case <-time.After(100 * time.Millisecond):
	}
}
