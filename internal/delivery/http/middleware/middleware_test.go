package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"healthhub/config"
	"healthhub/internal/usecase"
	"healthhub/pkg/jwt"
	"healthhub/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	workspaces map[string]*usecase.Workspace
	log        *logrus.Logger
	created    int
	full       bool
}

func (s *memoryStore) Get(id string) (*usecase.Workspace, error) {
	ws, ok := s.workspaces[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return ws, nil
}

func (s *memoryStore) Create() (*usecase.Workspace, error) {
	if s.full {
		return nil, errors.New("full")
	}
	s.created++
	id := "ws-" + string(rune('0'+s.created))
	ws, err := usecase.NewWorkspace(id, "http://remote.invalid/api", s.log, validator.NewValidator())
	if err != nil {
		return nil, err
	}
	s.workspaces[id] = ws
	return ws, nil
}

func newTestSessionMiddleware(t *testing.T) (*SessionMiddleware, *memoryStore, *jwt.JWTService) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := config.SessionConfig{Secret: "secret", Expiry: time.Hour, CookieName: "hh_session"}
	store := &memoryStore{workspaces: map[string]*usecase.Workspace{}, log: log}
	jwtService := jwt.NewJWTService(cfg)
	return NewSessionMiddleware(jwtService, store, cfg, false, log), store, jwtService
}

func TestSessionMiddleware_Attach(t *testing.T) {
	m, store, jwtService := newTestSessionMiddleware(t)
	existing, err := store.Create()
	require.NoError(t, err)

	var seen *usecase.Workspace
	handler := m.Attach(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetWorkspaceFromContext(r.Context())
	}))

	t.Run("No Cookie Allocates Nothing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Nil(t, seen)
		assert.Equal(t, 1, store.created)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("Known Cookie Resolves Workspace", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "hh_session", Value: mustToken(t, jwtService, existing.ID)})
		handler.ServeHTTP(httptest.NewRecorder(), req)

		require.NotNil(t, seen)
		assert.Equal(t, existing.ID, seen.ID)
	})

	t.Run("Tampered Or Unknown Cookie Is Ignored", func(t *testing.T) {
		for _, value := range []string{"garbage", mustToken(t, jwtService, "gone")} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: "hh_session", Value: value})
			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Nil(t, seen)
			assert.Equal(t, 1, store.created)
		}
	})
}

func TestSessionMiddleware_Ensure(t *testing.T) {
	m, store, jwtService := newTestSessionMiddleware(t)

	var seen string
	handler := m.Attach(m.Ensure(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := GetWorkspaceFromContext(r.Context())
		require.True(t, ok)
		seen = ws.ID
	})))

	t.Run("First Visit Issues A Cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "hh_session", cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)

		claims, err := jwtService.ValidateToken(cookies[0].Value)
		require.NoError(t, err)
		assert.Equal(t, seen, claims.SessionID)
	})

	t.Run("Known Cookie Reuses Workspace", func(t *testing.T) {
		before := store.created

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: "hh_session", Value: mustToken(t, jwtService, "ws-1")})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "ws-1", seen)
		assert.Equal(t, before, store.created)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("Unknown Cookie Starts Over", func(t *testing.T) {
		before := store.created
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.AddCookie(&http.Cookie{Name: "hh_session", Value: mustToken(t, jwtService, "gone")})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, before+1, store.created)
		assert.Len(t, rec.Result().Cookies(), 1)
	})

	t.Run("Full Store Answers Unavailable", func(t *testing.T) {
		store.full = true
		defer func() { store.full = false }()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func mustToken(t *testing.T, s *jwt.JWTService, id string) string {
	t.Helper()
	token, err := s.GenerateSessionToken(id)
	require.NoError(t, err)
	return token
}

func TestRequireUser(t *testing.T) {
	m, store, _ := newTestSessionMiddleware(t)
	reached := false
	handler := m.Attach(RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/login"`)
	assert.Equal(t, 0, store.created)
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	t.Run("Wildcard Without Credentials", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewCORSMiddleware("").Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("Configured Origin Allows Credentials", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewCORSMiddleware("https://app.example.com").Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	defer rl.Stop()
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}
