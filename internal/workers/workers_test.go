// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/yobo-blog/internal/logger"
	"github.com/stretchr/testify/assert"
)

type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_WaitsForAll(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewWorkers(w1, w2).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("workers did not stop")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	NewWorkers().Run(context.Background())
}

func TestPeriodic_Run(t *testing.T) {
	var calls atomic.Int32
	p := NewPeriodic("test", time.Millisecond, func(context.Context) { calls.Add(1) }, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	<-done
}

func TestPeriodic_RunsOnceWhenCancelled(t *testing.T) {
	var calls atomic.Int32
	p := NewPeriodic("test", time.Hour, func(context.Context) { calls.Add(1) }, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Run(ctx)

	assert.Equal(t, int32(1), calls.Load())
}
