package main

import (
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeReturnsListenError(t *testing.T) {
	log, _ := test.NewNullLogger()
	srv := &http.Server{Addr: "127.0.0.1:-1"}

	done := make(chan error, 1)
	go func() { done <- serve(srv, make(chan os.Signal), log) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP server failed")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the listener failed")
	}
}

func TestServeShutsDownOnSignal(t *testing.T) {
	log, hook := test.NewNullLogger()
	srv := &http.Server{Addr: "127.0.0.1:0"}

	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM

	done := make(chan error, 1)
	go func() { done <- serve(srv, quit, log) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the signal")
	}

	var shutdown bool
	for _, e := range hook.AllEntries() {
		if e.Message == "Shutting down" {
			shutdown = true
		}
	}
	assert.True(t, shutdown)
}
