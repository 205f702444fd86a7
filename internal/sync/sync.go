package sync

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/mithrel/scribe/internal/db"
	"github.com/mithrel/scribe/pkg/api"
)

// DefaultDelay is how long a sync pass stays in the syncing state.
const DefaultDelay = 150 * time.Millisecond

// Engine is a local stand-in for a remote sync backend. It never talks to
// the network: a pass walks the store, records which documents changed
// since the previous pass and reports syncing then idle.
type Engine struct {
	store db.Store
	log   *log.Logger
	delay time.Duration

	mu      sync.Mutex
	state   api.SyncState
	subs    map[int]chan api.SyncState
	nextSub int
	stopped bool
	synced  map[string]string // document id -> content hash at last pass
}

// Report summarizes one sync pass.
type Report struct {
	Reason  string
	Changed int
	Removed int
}

func New(cfg *viper.Viper, store db.Store, logger *log.Logger) *Engine {
	delay := DefaultDelay
	if cfg != nil && cfg.IsSet("sync.delay_ms") {
		delay = time.Duration(cfg.GetInt("sync.delay_ms")) * time.Millisecond
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		store:  store,
		log:    logger,
		delay:  delay,
		subs:   make(map[int]chan api.SyncState),
		synced: make(map[string]string),
	}
}

// State returns the most recently published state.
func (e *Engine) State() api.SyncState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Subscribe returns a channel that receives the current state immediately
// and every later transition. A subscriber that falls behind misses
// intermediate states. The cancel func unregisters and closes the channel.
func (e *Engine) Subscribe() (<-chan api.SyncState, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ch := make(chan api.SyncState, 4)
	if e.stopped {
		close(ch)
		return ch, func() {}
	}
	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	ch <- e.state
	return ch, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if c, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(c)
		}
	}
}

func (e *Engine) publish(s api.SyncState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = s
	for _, ch := range e.subs {
		select {
		case ch <- s:
		default:
		}
	}
}

// Start announces the idle state.
func (e *Engine) Start(ctx context.Context) error {
	e.publish(api.SyncState{Status: api.SyncIdle})
	return ctx.Err()
}

// Stop publishes idle and closes every subscription.
func (e *Engine) Stop() {
	e.publish(api.SyncState{Status: api.SyncIdle})
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, ch := range e.subs {
		close(ch)
		delete(e.subs, id)
	}
	e.stopped = true
}

// RequestSync runs one pass. The engine reports syncing, waits its delay
// and returns to idle; a canceled context cuts the wait short and the
// engine still ends idle.
func (e *Engine) RequestSync(ctx context.Context, reason string) (Report, error) {
	rep := Report{Reason: reason}
	e.publish(api.SyncState{Status: api.SyncSyncing})

	hashes, err := e.store.ContentHashes(ctx)
	if err != nil {
		e.publish(api.SyncState{Status: api.SyncError, Err: err.Error()})
		return rep, fmt.Errorf("sync: content hashes: %w", err)
	}
	rep.Changed, rep.Removed = e.diff(hashes)

	t := time.NewTimer(e.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		e.publish(api.SyncState{Status: api.SyncIdle})
		return rep, ctx.Err()
	case <-t.C:
	}

	e.publish(api.SyncState{Status: api.SyncIdle})
	e.log.Printf("sync (%s): %d changed, %d removed", reason, rep.Changed, rep.Removed)
	return rep, nil
}

func (e *Engine) diff(hashes map[string]string) (changed, removed int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, h := range hashes {
		if e.synced[id] != h {
			e.synced[id] = h
			changed++
		}
	}
	for id := range e.synced {
		if _, ok := hashes[id]; !ok {
			delete(e.synced, id)
			removed++
		}
	}
	return changed, removed
}
