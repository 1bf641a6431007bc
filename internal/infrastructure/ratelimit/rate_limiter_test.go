package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BurstThenDeny(t *testing.T) {
	rl := NewPerMinute(3)
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return fixed }

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("u1:assistant")
		assert.True(t, ok, "request %d", i)
	}

	ok, wait := rl.Allow("u1:assistant")
	assert.False(t, ok)
	assert.InDelta(t, 20*time.Second, wait, float64(time.Second))

	ok, _ = rl.Allow("u2:assistant")
	assert.True(t, ok, "keys are independent")
}

func TestRateLimiter_Refills(t *testing.T) {
	rl := NewPerMinute(1)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("k")
	assert.True(t, ok)
	ok, _ = rl.Allow("k")
	assert.False(t, ok)

	now = now.Add(time.Minute)
	ok, _ = rl.Allow("k")
	assert.True(t, ok)
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewPerMinute(5)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("old")
	now = now.Add(2 * time.Hour)
	rl.Allow("fresh")

	assert.Equal(t, 1, rl.Cleanup(time.Hour))
	assert.Len(t, rl.limiters, 1)
}
