// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:5000", cfg.addr())
	assert.Equal(t, 1000, cfg.MaxDimension)
	assert.Equal(t, 1_000_000, cfg.MaxElements)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.ReadHeaderTimeout)
	assert.Len(t, cfg.InstanceID, 36)

	level, err := cfg.level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := loadConfig(map[string]string{
		"MATFORM_LOG_LEVEL":        "debug",
		"MATFORM_HTTP_HOST":        "127.0.0.1",
		"MATFORM_HTTP_PORT":        "8081",
		"MATFORM_INSTANCE_ID":      "node-1",
		"MATFORM_MAX_DIMENSION":    "0",
		"MATFORM_SHUTDOWN_TIMEOUT": "2s",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.addr())
	assert.Equal(t, "node-1", cfg.InstanceID)
	assert.Equal(t, 0, cfg.MaxDimension)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	level, err := cfg.level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(map[string]string{"MATFORM_MAX_ELEMENTS": "many"})
	require.Error(t, err)

	_, err = loadConfig(map[string]string{"MATFORM_MAX_DIMENSION": "-1"})
	require.Error(t, err)

	cfg, err := loadConfig(map[string]string{"MATFORM_LOG_LEVEL": "loud"})
	require.NoError(t, err)
	_, err = cfg.level()
	require.Error(t, err)
}

// TestRun_ServesAndShutsDown starts the server on a random port, posts one
// form and cancels the context.
func TestRun_ServesAndShutsDown(t *testing.T) {
	cfg, err := loadConfig(map[string]string{"MATFORM_SHUTDOWN_TIMEOUT": "2s"})
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, logger, ln) }()

	base := "http://" + ln.Addr().String()
	form := url.Values{
		"rows_a": {"2"}, "cols_a": {"2"}, "matrix_a": {"1 2 3 4"},
		"rows_b": {"2"}, "cols_b": {"2"}, "matrix_b": {"5 6 7 8"},
	}
	resp, err := http.PostForm(base+"/multiply", form)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "<pre>19 22\n43 50</pre>"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Contains(t, logs.String(), "matform service shutting down")
}
