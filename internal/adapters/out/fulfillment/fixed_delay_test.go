package fulfillment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ordersystem/internal/adapters/out/fulfillment"
	"ordersystem/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFixedDelay_Await_WaitsOutTheDelay(t *testing.T) {
	step := fulfillment.NewFixedDelay(20*time.Millisecond, discardLogger())

	start := time.Now()
	err := step.Await(t.Context(), kernel.NewUUID())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixedDelay_Await_CancelledContextReturnsEarly(t *testing.T) {
	step := fulfillment.NewFixedDelay(10*time.Second, discardLogger())

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	start := time.Now()
	err := step.Await(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
