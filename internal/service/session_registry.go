package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"healthhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrWorkspaceNotFound is returned for unknown or expired workspace IDs
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrRegistryFull is returned when no slot is free even after a sweep
	ErrRegistryFull = errors.New("too many active sessions")
)

// Interval for sweeping idle workspaces
const workspaceCleanupInterval = 5 * time.Minute

// WorkspaceFactory builds a fresh, empty workspace for a new browser session.
type WorkspaceFactory func(id string) (*usecase.Workspace, error)

type workspaceWithTimestamp struct {
	workspace *usecase.Workspace
	lastUsed  atomic.Int64 // Unix nanoseconds
}

// RegistryLimits bounds how long and how many workspaces are kept.
// AnonymousExpiry applies to workspaces whose session has no user.
// MaxWorkspaces of zero means unlimited.
type RegistryLimits struct {
	Expiry          time.Duration
	AnonymousExpiry time.Duration
	MaxWorkspaces   int
}

// SessionRegistry keeps one Workspace per browser session and drops
// workspaces idle for longer than their expiry.
type SessionRegistry struct {
	workspaces sync.Map // map[string]*workspaceWithTimestamp
	count      atomic.Int64
	factory    WorkspaceFactory
	limits     RegistryLimits
	log        *logrus.Logger
	now        func() time.Time

	stopChan chan struct{}
	stopped  atomic.Bool
	wg       sync.WaitGroup
}

// NewSessionRegistry creates a new SessionRegistry.
// Starts background goroutine for idle workspace cleanup.
// Call Stop() during graceful shutdown.
func NewSessionRegistry(factory WorkspaceFactory, limits RegistryLimits, log *logrus.Logger) *SessionRegistry {
	r := newSessionRegistry(factory, limits, log, time.Now)

	r.wg.Add(1)
	go r.cleanupLoop()

	return r
}

func newSessionRegistry(factory WorkspaceFactory, limits RegistryLimits, log *logrus.Logger, now func() time.Time) *SessionRegistry {
	if limits.AnonymousExpiry <= 0 || limits.AnonymousExpiry > limits.Expiry {
		limits.AnonymousExpiry = limits.Expiry
	}
	return &SessionRegistry{
		factory:  factory,
		limits:   limits,
		log:      log,
		now:      now,
		stopChan: make(chan struct{}),
	}
}

// Stop gracefully shuts down the cleanup goroutine.
// Safe to call multiple times.
func (r *SessionRegistry) Stop() {
	if r.stopped.CompareAndSwap(false, true) {
		close(r.stopChan)
		r.wg.Wait()
		r.log.Info("SessionRegistry stopped")
	}
}

// Create registers a new workspace under a random ID. When the registry is
// full, expired workspaces are swept first.
func (r *SessionRegistry) Create() (*usecase.Workspace, error) {
	if r.full() {
		r.Sweep()
		if r.full() {
			r.log.Warn("Workspace registry is full")
			return nil, ErrRegistryFull
		}
	}

	id := uuid.NewString()
	ws, err := r.factory(id)
	if err != nil {
		return nil, err
	}

	entry := &workspaceWithTimestamp{workspace: ws}
	entry.lastUsed.Store(r.now().UnixNano())
	r.workspaces.Store(id, entry)
	r.count.Add(1)

	r.log.Debugf("Workspace %s created", id)
	return ws, nil
}

// Get returns the workspace for id and marks it as used.
func (r *SessionRegistry) Get(id string) (*usecase.Workspace, error) {
	value, ok := r.workspaces.Load(id)
	if !ok {
		return nil, ErrWorkspaceNotFound
	}
	entry := value.(*workspaceWithTimestamp)

	now := r.now()
	if r.isExpired(entry, now) {
		r.delete(id)
		return nil, ErrWorkspaceNotFound
	}
	entry.lastUsed.Store(now.UnixNano())
	return entry.workspace, nil
}

func (r *SessionRegistry) Remove(id string) {
	r.delete(id)
}

// Len counts the registered workspaces, expired ones included until swept.
func (r *SessionRegistry) Len() int {
	return int(r.count.Load())
}

func (r *SessionRegistry) full() bool {
	return r.limits.MaxWorkspaces > 0 && r.Len() >= r.limits.MaxWorkspaces
}

func (r *SessionRegistry) delete(id any) bool {
	if _, loaded := r.workspaces.LoadAndDelete(id); loaded {
		r.count.Add(-1)
		return true
	}
	return false
}

// Sweep removes expired workspaces and returns how many were removed.
func (r *SessionRegistry) Sweep() int {
	now := r.now()
	var cleaned int

	r.workspaces.Range(func(key, value any) bool {
		entry, ok := value.(*workspaceWithTimestamp)
		if !ok {
			return true
		}
		if r.isExpired(entry, now) && r.delete(key) {
			cleaned++
		}
		return true
	})

	if cleaned > 0 {
		r.log.Debugf("Cleaned up %d idle workspaces", cleaned)
	}
	return cleaned
}

func (r *SessionRegistry) isExpired(entry *workspaceWithTimestamp, now time.Time) bool {
	ttl := r.limits.Expiry
	if !entry.workspace.Session.IsAuthenticated() {
		ttl = r.limits.AnonymousExpiry
	}
	return now.Sub(time.Unix(0, entry.lastUsed.Load())) > ttl
}

// cleanupLoop runs in background to sweep idle workspaces
func (r *SessionRegistry) cleanupLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(workspaceCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			r.log.Debug("Workspace cleanup goroutine stopping")
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
