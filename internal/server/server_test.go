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

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestServer_StartServesUntilCanceled(t *testing.T) {
	cfg := testConfig("development")
	cfg.HTTP.Addr = freeAddr(t)

	srv, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTP.Addr + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK && resp.Header.Get("X-Frame-Options") == "DENY"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_StartListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := testConfig("production")
	cfg.HTTP.Addr = ln.Addr().String()

	srv, err := New(cfg)
	require.NoError(t, err)

	err = srv.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen http")
}

func TestServer_StartTLSMissingCertificate(t *testing.T) {
	cfg := testConfig("production")
	cfg.HTTP.Addr = freeAddr(t)
	cfg.HTTP.TLSAddr = freeAddr(t)
	cfg.HTTP.CertFile = "testdata/missing-cert.pem"
	cfg.HTTP.KeyFile = "testdata/missing-key.pem"

	srv, err := New(cfg)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Start(context.Background()) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "serve https")
	case <-time.After(10 * time.Second):
		t.Fatal("start did not fail")
	}
}
