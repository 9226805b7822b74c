package ws

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	relayMinBackoff = 500 * time.Millisecond
	relayMaxBackoff = 30 * time.Second
)

// Relay keeps the Redis notification subscription alive, resubscribing with
// backoff. Live reports whether events published to Redis reach this hub.
type Relay struct {
	client     *redis.Client
	hub        *Hub
	logger     *zap.Logger
	live       atomic.Bool
	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewRelay(client *redis.Client, hub *Hub, logger *zap.Logger) *Relay {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Relay{
		client:     client,
		hub:        hub,
		logger:     logger,
		minBackoff: relayMinBackoff,
		maxBackoff: relayMaxBackoff,
	}
}

func (r *Relay) Live() bool {
	return r != nil && r.live.Load()
}

// Run blocks until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) {
	backoff := r.minBackoff
	for {
		subscribed := false
		err := subscribe(ctx, r.client, r.hub, r.logger, func() {
			subscribed = true
			r.live.Store(true)
		})
		r.live.Store(false)
		if ctx.Err() != nil {
			return
		}
		if subscribed {
			backoff = r.minBackoff
		}
		if err == nil {
			err = errors.New("subscription closed")
		}
		r.logger.Warn("[WS] redis relay down, retrying", zap.Duration("backoff", backoff), zap.Error(err))

		t := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
		backoff = min(backoff*2, r.maxBackoff)
	}
}
