// Package presence tracks which identity is online on which session.
package presence

import (
	"sort"
	"sync"
)

// Notifier receives the online snapshot after every effective change.
// It runs with the registry lock held, so snapshots arrive in mutation
// order; it must not call back into the registry.
type Notifier func(online []string)

// Registry is a bidirectional identity ↔ session index. Each identity has
// at most one live session: a later Join replaces the earlier session.
type Registry struct {
	mu         sync.RWMutex
	bySession  map[string]string
	byIdentity map[string]string
	notify     Notifier
}

func NewRegistry(notify Notifier) *Registry {
	return &Registry{
		bySession:  make(map[string]string),
		byIdentity: make(map[string]string),
		notify:     notify,
	}
}

// Join binds identity to sessionID and returns the new snapshot. A session
// previously bound to identity is forgotten, and sessionID is released from
// any identity it was bound to before.
func (r *Registry) Join(identity, sessionID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byIdentity[identity]; ok {
		delete(r.bySession, old)
	}
	if prev, ok := r.bySession[sessionID]; ok && prev != identity {
		delete(r.byIdentity, prev)
	}
	r.byIdentity[identity] = sessionID
	r.bySession[sessionID] = identity

	snap := r.snapshotLocked()
	if r.notify != nil {
		r.notify(snap)
	}
	return snap
}

// Leave drops sessionID. It reports false, without notifying, when the
// session is unknown or was already replaced by a newer one.
func (r *Registry) Leave(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity, ok := r.bySession[sessionID]
	if !ok {
		return false
	}
	delete(r.bySession, sessionID)
	if r.byIdentity[identity] == sessionID {
		delete(r.byIdentity, identity)
	}

	if r.notify != nil {
		r.notify(r.snapshotLocked())
	}
	return true
}

// Lookup returns identity's current session.
func (r *Registry) Lookup(identity string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byIdentity[identity]
	return s, ok
}

// IdentityOf returns the identity bound to sessionID.
func (r *Registry) IdentityOf(sessionID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.bySession[sessionID]
	return id, ok
}

// Snapshot returns the online identities in lexical order.
func (r *Registry) Snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *Registry) snapshotLocked() []string {
	out := make([]string, 0, len(r.byIdentity))
	for id := range r.byIdentity {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
