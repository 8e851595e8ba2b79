package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/ipsqr/pkg/logger"
)

func TestHandler_AddsContextValues(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := slog.New(&logger.Handler{Handler: slog.NewJSONHandler(buf, nil)}).With("app", "ipsqr")

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithSlipID(ctx, "slip-1")

	l.InfoContext(ctx, "hello")

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "req-1", got["request_id"])
	require.Equal(t, "slip-1", got["slip_id"])
	require.Equal(t, "ipsqr", got["app"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
	require.Equal(t, "", logger.RequestIDFromCtx(context.Background()))
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.New("loud", "json")
	require.Error(t, err)
}
