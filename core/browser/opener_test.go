package browser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenerWaitsForReadyAndOpensOnce(t *testing.T) {
	ready := make(chan struct{})
	calls := make(chan string, 2)

	o := NewOpener(Config{Enabled: true}, "http://localhost:8000", ready, zap.NewNop())
	o.open = func(url string) error {
		calls <- url
		return nil
	}

	go o.Run(context.Background())

	select {
	case <-calls:
		t.Fatal("browser opened before the server was ready")
	case <-time.After(50 * time.Millisecond):
	}

	close(ready)

	select {
	case url := <-calls:
		assert.Equal(t, "http://localhost:8000", url)
	case <-time.After(2 * time.Second):
		t.Fatal("browser was never opened")
	}

	select {
	case <-calls:
		t.Fatal("browser opened more than once")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestOpenerDisabled(t *testing.T) {
	ready := make(chan struct{})
	close(ready)

	opened := false
	o := NewOpener(Config{Enabled: false}, "http://localhost:8000", ready, zap.NewNop())
	o.open = func(string) error {
		opened = true
		return nil
	}

	done := make(chan struct{})
	go func() {
		o.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled opener did not return")
	}
	assert.False(t, opened)
}

func TestOpenerSwallowsOpenFailure(t *testing.T) {
	ready := make(chan struct{})
	close(ready)

	o := NewOpener(Config{Enabled: true}, "http://localhost:8000", ready, zap.NewNop())
	o.open = func(string) error {
		return errors.New("no browser installed")
	}

	done := make(chan struct{})
	go func() {
		o.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("opener did not return after a failed open")
	}
}

func TestOpenerAbandonsOnCancel(t *testing.T) {
	ready := make(chan struct{})

	opened := false
	o := NewOpener(Config{Enabled: true}, "http://localhost:8000", ready, zap.NewNop())
	o.open = func(string) error {
		opened = true
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		o.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("opener did not return after cancellation")
	}
	assert.False(t, opened)
}

func TestOpenerAppliesDelayAfterReady(t *testing.T) {
	ready := make(chan struct{})
	close(ready)

	calls := make(chan time.Time, 1)
	o := NewOpener(Config{Enabled: true, DelaySeconds: 1}, "http://localhost:8000", ready, zap.NewNop())
	o.open = func(string) error {
		calls <- time.Now()
		return nil
	}

	start := time.Now()
	go o.Run(context.Background())

	select {
	case at := <-calls:
		require.GreaterOrEqual(t, at.Sub(start), time.Second)
	case <-time.After(3 * time.Second):
		t.Fatal("browser was never opened")
	}
}

func TestNewOpenerUsesPlatformOpen(t *testing.T) {
	o := NewOpener(Config{Enabled: true}, "http://localhost:8000", make(chan struct{}), zap.NewNop())
	require.NotNil(t, o.open)
}
