package service

import (
	"io"
	"sync"
	"testing"
	"time"

	"healthhub/internal/domain/entity"
	"healthhub/internal/usecase"
	"healthhub/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRegistry(t *testing.T, limits RegistryLimits) (*SessionRegistry, *fakeClock) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	v := validator.NewValidator()

	factory := func(id string) (*usecase.Workspace, error) {
		return usecase.NewWorkspace(id, "http://remote.invalid/api", log, v)
	}
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return newSessionRegistry(factory, limits, log, clock.Now), clock
}

var hourLimits = RegistryLimits{Expiry: time.Hour}

func TestSessionRegistry_CreateAndGet(t *testing.T) {
	registry, _ := newTestRegistry(t, hourLimits)

	ws, err := registry.Create()
	require.NoError(t, err)
	require.NotEmpty(t, ws.ID)

	got, err := registry.Get(ws.ID)
	require.NoError(t, err)
	assert.Same(t, ws, got)

	_, err = registry.Get("unknown")
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
}

func TestSessionRegistry_WorkspacesAreIsolated(t *testing.T) {
	registry, _ := newTestRegistry(t, hourLimits)

	a, err := registry.Create()
	require.NoError(t, err)
	b, err := registry.Create()
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a.Session, b.Session)
	assert.NotSame(t, a.Appointments, b.Appointments)
}

func TestSessionRegistry_Expiry(t *testing.T) {
	registry, clock := newTestRegistry(t, hourLimits)

	idle, err := registry.Create()
	require.NoError(t, err)
	active, err := registry.Create()
	require.NoError(t, err)

	clock.Advance(50 * time.Minute)
	_, err = registry.Get(active.ID)
	require.NoError(t, err)

	clock.Advance(20 * time.Minute)
	assert.Equal(t, 1, registry.Sweep())
	assert.Equal(t, 1, registry.Len())

	_, err = registry.Get(idle.ID)
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
	_, err = registry.Get(active.ID)
	assert.NoError(t, err)
}

func TestSessionRegistry_StopIsIdempotent(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	registry := NewSessionRegistry(func(id string) (*usecase.Workspace, error) { return nil, nil }, hourLimits, log)
	registry.Stop()
	registry.Stop()
}

func TestSessionRegistry_AnonymousWorkspacesExpireSooner(t *testing.T) {
	registry, clock := newTestRegistry(t, RegistryLimits{Expiry: time.Hour, AnonymousExpiry: 10 * time.Minute})

	anonymous, err := registry.Create()
	require.NoError(t, err)
	member, err := registry.Create()
	require.NoError(t, err)
	require.NoError(t, member.Session.Login(entity.User{Email: "ann@example.com"}))

	clock.Advance(15 * time.Minute)
	assert.Equal(t, 1, registry.Sweep())

	_, err = registry.Get(anonymous.ID)
	assert.ErrorIs(t, err, ErrWorkspaceNotFound)
	_, err = registry.Get(member.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, registry.Len())
}

func TestSessionRegistry_Capacity(t *testing.T) {
	registry, clock := newTestRegistry(t, RegistryLimits{Expiry: time.Hour, AnonymousExpiry: 10 * time.Minute, MaxWorkspaces: 2})

	_, err := registry.Create()
	require.NoError(t, err)
	_, err = registry.Create()
	require.NoError(t, err)

	_, err = registry.Create()
	assert.ErrorIs(t, err, ErrRegistryFull)
	assert.Equal(t, 2, registry.Len())

	// a full registry frees expired slots before refusing
	clock.Advance(11 * time.Minute)
	_, err = registry.Create()
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Len())
}

func TestSessionRegistry_RemoveKeepsCount(t *testing.T) {
	registry, _ := newTestRegistry(t, hourLimits)

	ws, err := registry.Create()
	require.NoError(t, err)
	registry.Remove(ws.ID)
	registry.Remove(ws.ID)

	assert.Equal(t, 0, registry.Len())
}
