package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolDoReturnsResult(t *testing.T) {
	t.Parallel()

	p := NewPool(2, nil)

	if err := p.Do(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Errorf("Do() error = %v, want nil", err)
	}

	wantErr := errors.New("lookup failed")
	if err := p.Do(context.Background(), func(context.Context) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("Do() error = %v, want %v", err, wantErr)
	}
}

func TestPoolBoundsConcurrency(t *testing.T) {
	t.Parallel()

	const poolSize = 3

	p := NewPool(poolSize, nil)

	var (
		current atomic.Int32
		peak    atomic.Int32
		wg      sync.WaitGroup
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func(context.Context) error {
				n := current.Add(1)
				for {
					old := peak.Load()
					if n <= old || peak.CompareAndSwap(old, n) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				current.Add(-1)
				return nil
			})
		}()
	}
	wg.Wait()

	if got := peak.Load(); got > poolSize {
		t.Errorf("observed %d concurrent calls, pool size is %d", got, poolSize)
	}
}

func TestPoolDoRespectsCancelledContext(t *testing.T) {
	t.Parallel()

	p := NewPool(1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Do(ctx, func(context.Context) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
}
