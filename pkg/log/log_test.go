package log

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtx(t *testing.T) {
	ctx := context.Background()

	// without a logger in the context we fall back to the default
	l := Ctx(ctx)
	require.NotNil(t, l)
	assert.Equal(t, defaultLogger, l)

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NotEqual(t, defaultLogger, custom)

	ctx = With(ctx, custom)
	assert.Equal(t, custom, Ctx(ctx))
}
