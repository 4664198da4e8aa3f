package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"testing"

	"github.com/WillianDSilveira/Gerenciador-Tarefas-Com-IA/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStartHTTPServerListenFailure verifies that a server that never
// manages to listen reports the failure instead of exiting cleanly.
func TestStartHTTPServerListenFailure(t *testing.T) {
	// Occupy a port so ListenAndServe fails immediately.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port

	app := &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: port, LogLevel: "info"},
		},
		logger: slog.Default(),
	}

	err = app.startHTTPServer(context.Background(), http.NewServeMux())

	require.Error(t, err, "a listen failure must propagate to the caller")
	assert.Contains(t, err.Error(), "server failed")
}
