package services

import (
	"context"
	"sync"
	"time"
)

// CartRegistry keeps one CartStore per shopping session. Every store shares the
// slot backend and catalog and persists under "<prefix>:<session>".
//
// Stores unused for idleTTL are dropped and reopened from their slot on the next
// request. With idleTTL <= 0 nothing is cached and every Get rereads the slot,
// which is what several instances sharing one slot backend need.
type CartRegistry struct {
	mu        sync.Mutex
	prefix    string
	idleTTL   time.Duration
	template  CartStoreOptions
	entries   map[string]*cartEntry
	nextSweep time.Time
	now       func() time.Time
}

type cartEntry struct {
	store    *CartStore
	ready    chan struct{}
	lastUsed time.Time
}

func NewCartRegistry(prefix string, idleTTL time.Duration, template CartStoreOptions) *CartRegistry {
	return &CartRegistry{
		prefix:   prefix,
		idleTTL:  idleTTL,
		template: template,
		entries:  make(map[string]*cartEntry),
		now:      time.Now,
	}
}

func (r *CartRegistry) SlotKey(session string) string {
	return r.prefix + ":" + session
}

// Get returns the session's store, restoring it from its slot on first use.
// Concurrent first requests for one session share a single restore.
func (r *CartRegistry) Get(ctx context.Context, session string) *CartStore {
	if r.idleTTL <= 0 {
		return r.open(ctx, session)
	}

	r.mu.Lock()
	now := r.now()
	r.sweepLocked(now)
	e, ok := r.entries[session]
	if !ok {
		e = &cartEntry{ready: make(chan struct{})}
		r.entries[session] = e
	}
	e.lastUsed = now
	r.mu.Unlock()

	if !ok {
		e.store = r.open(ctx, session)
		close(e.ready)
	}
	<-e.ready
	return e.store
}

func (r *CartRegistry) open(ctx context.Context, session string) *CartStore {
	opts := r.template
	opts.Key = r.SlotKey(session)
	if opts.Logger != nil {
		opts.Logger = opts.Logger.WithField("session", session)
	}
	return NewCartStore(ctx, opts)
}

// sweepLocked drops idle stores, at most once per idleTTL.
func (r *CartRegistry) sweepLocked(now time.Time) {
	if now.Before(r.nextSweep) {
		return
	}
	r.nextSweep = now.Add(r.idleTTL)
	for session, e := range r.entries {
		if now.Sub(e.lastUsed) >= r.idleTTL {
			delete(r.entries, session)
		}
	}
}

func (r *CartRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
