package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_BurstIsImmediate(t *testing.T) {
	r := NewRateLimiter(2, 5)

	start := time.Now()
	for i := range 5 {
		require.NoError(t, r.Wait(context.Background()), "request %d", i+1)
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestRateLimiter_DeadlineTooShort(t *testing.T) {
	r := NewRateLimiter(1, 1)
	require.NoError(t, r.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := r.Wait(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait")
}

func TestRateLimiter_Canceled(t *testing.T) {
	r := NewRateLimiter(0.5, 1)
	require.NoError(t, r.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, r.Wait(ctx))
}
