package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterEnforcesLimit(t *testing.T) {
	limiter := NewMemory(Window{Limit: 3, Period: time.Minute})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "user-a")
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, err := limiter.Allow(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, ok)

	// Keys count independently.
	ok, err = limiter.Allow(ctx, "user-b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiterWindowResets(t *testing.T) {
	limiter := NewMemory(Window{Limit: 1, Period: 10 * time.Millisecond})
	ctx := context.Background()

	ok, err := limiter.Allow(ctx, "user-a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, ok)

	time.Sleep(15 * time.Millisecond)

	ok, err = limiter.Allow(ctx, "user-a")
	require.NoError(t, err)
	assert.True(t, ok)
}
