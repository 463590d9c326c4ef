package state

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Log stamps local ops and filters out remote ops already seen. Stamped ops
// are totally ordered by Version; a local op is always ordered after every
// op the log has seen.
type Log struct {
	site  string
	clock Clock
	seen  map[string]struct{}
	mu    sync.Mutex
}

func NewLog() *Log {
	return NewLogForSite(NewSiteID())
}

func NewLogForSite(site string) *Log {
	return &Log{
		site: site,
		seen: make(map[string]struct{}),
	}
}

// Local assigns an ID (if missing), a Lamport time and this site to op.
func (l *Log) Local(op Op) Op {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	op.Lamport = l.clock.Tick()
	op.Site = l.site

	l.mu.Lock()
	l.seen[op.ID] = struct{}{}
	l.mu.Unlock()

	log.Printf("[OPLOG] Local %s added: %s", op.Type, op.ID)
	return op
}

// Accept reports whether a remote op is new and should be applied.
func (l *Log) Accept(op Op) bool {
	if op.ID == "" {
		log.Printf("[OPLOG] Dropping %s op without an ID from site %s", op.Type, op.Site)
		return false
	}

	l.mu.Lock()
	if _, exists := l.seen[op.ID]; exists {
		l.mu.Unlock()
		log.Printf("[OPLOG] Op %s already applied, ignoring", op.ID)
		return false
	}
	l.seen[op.ID] = struct{}{}
	l.mu.Unlock()

	l.clock.Update(op.Lamport)
	log.Printf("[OPLOG] Remote %s added: %s from site %s", op.Type, op.ID, op.Site)
	return true
}

func (l *Log) Site() string { return l.site }

// Lamport returns the latest logical time seen.
func (l *Log) Lamport() uint64 { return l.clock.Now() }

// Len is the number of distinct ops seen.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}
