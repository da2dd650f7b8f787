package database

import (
	"fmt"
	"log"
	"sync"

	"github.com/lib/pq"

	"github.com/comfitco/luxe-store/internal/config"
)

// TableListener owns a single LISTEN subscription on one notification
// channel (one per table, fed by pg_notify triggers). Incoming
// notifications are coalesced into an unbuffered-ish event stream: the
// consumer only learns that something changed, never what.
type TableListener struct {
	channel string
	pl      *pq.Listener

	events    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Listen opens a LISTEN subscription on channel. The returned listener
// reconnects on its own; a reconnect is reported as a synthetic event so
// the consumer refetches anything it may have missed while disconnected.
func Listen(dbCfg *config.DatabaseConfig, lCfg *config.ListenerConfig, channel string) (*TableListener, error) {
	pl := pq.NewListener(dbCfg.URL, lCfg.MinReconnect, lCfg.MaxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Printf("listener %s: %v", channel, err)
		}
	})

	if err := pl.Listen(channel); err != nil {
		pl.Close()
		return nil, fmt.Errorf("listen %s: %w", channel, err)
	}

	t := &TableListener{
		channel: channel,
		pl:      pl,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}

	go t.forward()

	return t, nil
}

func (t *TableListener) forward() {
	for {
		select {
		case <-t.done:
			return
		case _, ok := <-t.pl.Notify:
			if !ok {
				close(t.events)
				return
			}
			// A nil notification marks a re-established connection;
			// either way the consumer should refetch.
			select {
			case t.events <- struct{}{}:
			default:
				// An event is already pending; back-to-back
				// notifications coalesce into one refetch.
			}
		}
	}
}

// C is the coalesced change-event stream.
func (t *TableListener) C() <-chan struct{} {
	return t.events
}

// Close tears down the subscription. It is idempotent and safe to call
// at any point of the listener's life.
func (t *TableListener) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.done)
		err = t.pl.Close()
	})
	return err
}
