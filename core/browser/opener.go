package browser

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// OpenFunc is the mechanism used to open a URL in the default browser.
type OpenFunc func(url string) error

// Opener opens the default browser at the server URL once the server is
// reachable. It runs as a detached background task: nothing joins it, and a
// failure to open never reaches the serving path.
type Opener struct {
	cfg   Config
	url   string
	ready <-chan struct{}
	open  OpenFunc
	log   *zap.Logger
}

// NewOpener creates an opener for url, gated on the ready channel.
func NewOpener(cfg Config, url string, ready <-chan struct{}, log *zap.Logger) *Opener {
	return &Opener{
		cfg:   cfg,
		url:   url,
		ready: ready,
		open:  Open,
		log:   log,
	}
}

// Run waits until the server is ready, then waits the configured delay and
// opens the browser exactly once. It returns without opening when the opener
// is disabled or the context is cancelled first. Failures to open are logged
// at debug level and otherwise swallowed.
func (o *Opener) Run(ctx context.Context) {
	if !o.cfg.Enabled {
		return
	}

	select {
	case <-o.ready:
	case <-ctx.Done():
		return
	}

	if delay := time.Duration(o.cfg.DelaySeconds) * time.Second; delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return
		}
	}

	if err := o.open(o.url); err != nil {
		o.log.Debug("Failed to open browser", zap.String("url", o.url), zap.Error(err))
		return
	}
	o.log.Debug("Opened browser", zap.String("url", o.url))
}
