package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsJobs(t *testing.T) {
	s := New(context.Background())

	var runs int32
	require.NoError(t, s.Add("count", "@every 1s", func(ctx context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	}))
	require.NoError(t, s.Add("fail", "@every 1s", func(ctx context.Context) error {
		return errors.New("boom")
	}))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&runs) > 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestScheduler_RejectsBadSpec(t *testing.T) {
	s := New(context.Background())
	assert.Error(t, s.Add("bad", "every now and then", func(context.Context) error { return nil }))
	assert.NoError(t, s.Add("off", "", func(context.Context) error { return nil }))
}
