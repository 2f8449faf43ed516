package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) PurgeDeleted(_ context.Context, retention time.Duration) (int64, error) {
	p.calls.Add(1)
	return 1, p.err
}

func TestStartPurgeTask_RunsImmediatelyAndOnTick(t *testing.T) {
	p := &countingPurger{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartPurgeTask(ctx, p, time.Hour, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return p.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestStartPurgeTask_StopsOnCancel(t *testing.T) {
	p := &countingPurger{err: errors.New("db down")}
	ctx, cancel := context.WithCancel(context.Background())

	StartPurgeTask(ctx, p, time.Hour, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return p.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()

	time.Sleep(30 * time.Millisecond)
	settled := p.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, p.calls.Load())
}
