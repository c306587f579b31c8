// Package realtime maintains the message-stream connection that pushes
// unread-message-count updates into the cache. The channel carries no other
// protocol obligation; messages themselves are read elsewhere.
package realtime

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/net/websocket"

	"github.com/gufrankhursheed/job-platform-frontend/internal/client/store"
	"github.com/gufrankhursheed/job-platform-frontend/internal/logging"
)

// frame is the only wire shape the listener understands.
type frame struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

const (
	frameNewMessage  = "newMessage"
	frameUnreadCount = "unreadCount"
)

// TokenSource supplies the current session token for the handshake, or
// false when logged out.
type TokenSource func() (string, bool)

// Listener connects to the socket endpoint and applies count updates to
// the store. It reconnects with capped exponential backoff until the
// context is cancelled.
type Listener struct {
	url      string
	origin   string
	token    TokenSource
	store    *store.Store
	log      logging.Logger
	maxDelay time.Duration
}

func NewListener(socketURL, origin string, token TokenSource, st *store.Store, log logging.Logger, maxDelay time.Duration) *Listener {
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}
	return &Listener{url: socketURL, origin: origin, token: token, store: st, log: log, maxDelay: maxDelay}
}

// Run blocks until ctx is cancelled. While logged out it idles instead of
// dialing.
func (l *Listener) Run(ctx context.Context) {
	delay := time.Second
	for {
		if ctx.Err() != nil {
			return
		}

		token, ok := l.token()
		if !ok {
			if !sleep(ctx, delay) {
				return
			}
			continue
		}

		if err := l.listenOnce(ctx, token); err != nil {
			l.log.Warn(ctx, "socket disconnected", "error", err, "retry_in", delay)
		}

		if !sleep(ctx, delay) {
			return
		}
		delay *= 2
		if delay > l.maxDelay {
			delay = l.maxDelay
		}
	}
}

func (l *Listener) listenOnce(ctx context.Context, token string) error {
	cfg, err := websocket.NewConfig(l.url, l.origin)
	if err != nil {
		return fmt.Errorf("socket config: %w", err)
	}
	cfg.Header.Set("Authorization", "Bearer "+token)

	conn, err := websocket.DialConfig(cfg)
	if err != nil {
		return fmt.Errorf("socket dial: %w", err)
	}
	defer conn.Close()

	// Close the connection when the context ends so the read loop unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var f frame
		if err := websocket.JSON.Receive(conn, &f); err != nil {
			return fmt.Errorf("socket read: %w", err)
		}
		l.apply(f)
	}
}

func (l *Listener) apply(f frame) {
	switch f.Type {
	case frameNewMessage:
		l.store.IncrementUnread()
	case frameUnreadCount:
		l.store.SetUnreadCount(f.Count)
	default:
		// Unknown frames are ignored; the channel owes us nothing else.
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
