package ops_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/streamsvc/userd/internal/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func doRequest(t *testing.T, handler http.Handler, path string) (int, string) {
	t.Helper()

	srv := httptest.NewServer(handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err, "Request should not fail at the transport level")
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	db := pingerFunc(func(ctx context.Context) error { return nil })
	srv := ops.New(0, db, slog.Default())

	code, body := doRequest(t, srv.Handler(), "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", body)
}

func TestReadyz(t *testing.T) {
	t.Run("ready when the database answers", func(t *testing.T) {
		db := pingerFunc(func(ctx context.Context) error { return nil })
		srv := ops.New(0, db, slog.Default())

		code, body := doRequest(t, srv.Handler(), "/readyz")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "OK", body)
	})

	t.Run("unavailable when the database does not", func(t *testing.T) {
		db := pingerFunc(func(ctx context.Context) error {
			return errors.New("connection refused")
		})
		srv := ops.New(0, db, slog.Default())

		code, body := doRequest(t, srv.Handler(), "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "database unavailable", body)
		assert.NotContains(t, body, "connection refused", "Probe responses should not carry the cause")
	})

	t.Run("probe carries a deadline", func(t *testing.T) {
		var hadDeadline bool
		db := pingerFunc(func(ctx context.Context) error {
			_, hadDeadline = ctx.Deadline()
			return nil
		})
		srv := ops.New(0, db, slog.Default())

		doRequest(t, srv.Handler(), "/readyz")
		assert.True(t, hadDeadline, "Readiness pings must not hang on a stuck database")
	})
}
