package service

import (
	"log/slog"
	"sync"
	"time"
)

// RevocationRegistry holds the credential ids revoked by logout. Every
// authorized request reads it and logout writes it, so all access is
// lock-guarded. Entries carry the credential's own expiry: once that passes
// the expiry check rejects the credential anyway, so the entry is dead
// weight and the sweeper removes it. Memory is therefore bounded by
// concurrently valid-and-revoked sessions, not by total logouts.
type RevocationRegistry struct {
	Logger   *slog.Logger
	Interval time.Duration

	mu      sync.Mutex
	revoked map[string]time.Time // credential id -> credential expiry

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewRevocationRegistry creates a registry whose sweeper runs at the given
// interval. If interval is 0 or negative, defaults to 10 minutes.
func NewRevocationRegistry(logger *slog.Logger, interval time.Duration) *RevocationRegistry {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &RevocationRegistry{
		Logger:   logger,
		Interval: interval,
		revoked:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Revoke marks a credential id as revoked until the credential's own expiry.
// Revoking the same id again is a no-op.
func (r *RevocationRegistry) Revoke(credentialID string, expiresAt time.Time) {
	if credentialID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Keep the later expiry if the id is somehow revoked twice
	if existing, ok := r.revoked[credentialID]; !ok || expiresAt.After(existing) {
		r.revoked[credentialID] = expiresAt
	}
}

// IsRevoked reports whether the credential id has been revoked. Entries past
// their credential expiry are dropped on sight: the expiry check already
// rejects those credentials.
func (r *RevocationRegistry) IsRevoked(credentialID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiresAt, ok := r.revoked[credentialID]
	if !ok {
		return false
	}
	if time.Now().After(expiresAt) {
		delete(r.revoked, credentialID)
		return false
	}
	return true
}

// Len returns the current number of tracked revocations.
func (r *RevocationRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.revoked)
}

// Start begins the background sweeper. Non-blocking; call Stop to shut down.
func (r *RevocationRegistry) Start() {
	go r.run()
	r.Logger.Info("revocation registry sweeper started", "interval", r.Interval)
}

// Stop gracefully shuts down the sweeper, blocking until it has finished.
func (r *RevocationRegistry) Stop() {
	close(r.stopCh)
	<-r.doneCh
	r.Logger.Info("revocation registry sweeper stopped")
}

func (r *RevocationRegistry) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stopCh:
			return
		}
	}
}

// sweep removes entries whose credential has expired.
func (r *RevocationRegistry) sweep() {
	now := time.Now()

	r.mu.Lock()
	var removed int
	for id, expiresAt := range r.revoked {
		if now.After(expiresAt) {
			delete(r.revoked, id)
			removed++
		}
	}
	remaining := len(r.revoked)
	r.mu.Unlock()

	if removed > 0 {
		r.Logger.Debug("revocation sweep completed", "removed", removed, "remaining", remaining)
	}
}
