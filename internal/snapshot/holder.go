// Package snapshot owns the combined record once a fetch has succeeded.
//
// A Holder starts out not loaded. Set replaces the record wholesale; the
// stored value is never mutated afterwards and Get hands out copies, so
// readers need no locking. A loaded record with no skills or projects is
// still loaded.
package snapshot

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"portfolio/internal/domain/portfolio"
)

const MirrorKey = "portfolio:snapshot"

// Mirror is an optional shared copy, so a record loaded by one process is
// visible to the others.
type Mirror interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type entry struct {
	rec      portfolio.Record
	loadedAt time.Time
}

type Holder struct {
	cur    atomic.Pointer[entry]
	mirror Mirror
	logger *log.Logger
}

func NewHolder(mirror Mirror, logger *log.Logger) *Holder {
	if logger == nil {
		logger = log.Default()
	}
	return &Holder{mirror: mirror, logger: logger}
}

func (h *Holder) Set(ctx context.Context, rec portfolio.Record) {
	h.cur.Store(&entry{rec: clone(rec), loadedAt: time.Now().UTC()})

	if h.mirror == nil {
		return
	}
	if err := h.mirror.SetJSON(ctx, MirrorKey, rec, 0); err != nil {
		h.logger.Printf("[Snapshot] mirror write failed err=%v", err)
	}
}

// Get returns a copy of the current record. ok is false until the first
// Set, here or on another process sharing the mirror.
func (h *Holder) Get(ctx context.Context) (portfolio.Record, bool) {
	if e := h.cur.Load(); e != nil {
		return clone(e.rec), true
	}
	if h.mirror == nil {
		return portfolio.Record{}, false
	}

	var rec portfolio.Record
	found, err := h.mirror.GetJSON(ctx, MirrorKey, &rec)
	if err != nil {
		h.logger.Printf("[Snapshot] mirror read failed err=%v", err)
		return portfolio.Record{}, false
	}
	if !found {
		return portfolio.Record{}, false
	}
	h.cur.CompareAndSwap(nil, &entry{rec: clone(rec), loadedAt: time.Now().UTC()})
	return rec, true
}

// LoadedAt reports when the in-process record was stored.
func (h *Holder) LoadedAt() (time.Time, bool) {
	e := h.cur.Load()
	if e == nil {
		return time.Time{}, false
	}
	return e.loadedAt, true
}

// clone detaches the stored record from slices the caller still owns.
func clone(rec portfolio.Record) portfolio.Record {
	out := portfolio.Record{
		Skills:   append(make([]portfolio.SkillCategory, 0, len(rec.Skills)), rec.Skills...),
		Projects: append(make([]portfolio.Project, 0, len(rec.Projects)), rec.Projects...),
	}
	if rec.Profile != nil {
		p := *rec.Profile
		out.Profile = &p
	}
	if rec.Services != nil {
		out.Services = append(make([]portfolio.Service, 0, len(rec.Services)), rec.Services...)
	}
	return out
}
