package server

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"strconv"
	"syscall"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/models"
)

func testLogger(t *testing.T) (*logger.ZapLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	zl, err := logger.NewZapLogger(logger.ZapConfig{Service: "server-test", Level: "info", Output: buf}, nil)
	require.NoError(t, err)
	return zl, buf
}

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewGracefulServer_Timeouts(t *testing.T) {
	zl, _ := testLogger(t)
	e := echo.New()

	gs := NewGracefulServer(e, zl, models.ServerConfig{Port: 8080, ReadTimeout: 5, WriteTimeout: 7})
	assert.Equal(t, ":8080", gs.addr)
	assert.Equal(t, defaultShutdownTimeout, gs.timeout)
	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 7*time.Second, e.Server.WriteTimeout)

	gs = NewGracefulServer(echo.New(), zl, models.ServerConfig{Host: "127.0.0.1", Port: 9090, ShutdownTimeout: 3})
	assert.Equal(t, "127.0.0.1:9090", gs.addr)
	assert.Equal(t, 3*time.Second, gs.timeout)
}

func TestGracefulServer_RunUntilSignal(t *testing.T) {
	zl, _ := testLogger(t)
	port := freePort(t)

	e := echo.New()
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	gs := NewGracefulServer(e, zl, models.ServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: 5})

	var closed []string
	gs.OnShutdown("postgres", func(context.Context) error { closed = append(closed, "postgres"); return nil })
	gs.OnShutdown("nats", func(context.Context) error { closed = append(closed, "nats"); return nil })

	stop := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() { done <- gs.Run(stop) }()

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/ping"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	stop <- syscall.SIGTERM
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Equal(t, []string{"nats", "postgres"}, closed)
}

func TestGracefulServer_ListenFailure(t *testing.T) {
	zl, _ := testLogger(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	gs := NewGracefulServer(echo.New(), zl, models.ServerConfig{Host: "127.0.0.1", Port: port})
	cleaned := false
	gs.OnShutdown("redis", func(context.Context) error { cleaned = true; return nil })

	err = gs.Run(make(chan os.Signal))
	assert.Error(t, err)
	assert.True(t, cleaned)
}

func TestShutdownManager_ContinuesAfterFailure(t *testing.T) {
	zl, buf := testLogger(t)
	sm := NewShutdownManager(zl)

	ran := 0
	sm.Register("first", func(context.Context) error { ran++; return nil })
	sm.Register("broken", func(context.Context) error { ran++; return errors.New("close failed") })

	sm.Shutdown(context.Background())
	assert.Equal(t, 2, ran)
	assert.Contains(t, buf.String(), `"component":"broken"`)
	assert.Contains(t, buf.String(), "close failed")
}
