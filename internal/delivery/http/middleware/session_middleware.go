package middleware

import (
	"context"
	"net/http"

	"healthhub/config"
	"healthhub/internal/session"
	"healthhub/internal/usecase"
	"healthhub/pkg/jwt"
	"healthhub/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const WorkspaceKey contextKey = "workspace"

// WorkspaceStore hands out the per browser workspaces.
type WorkspaceStore interface {
	Get(id string) (*usecase.Workspace, error)
	Create() (*usecase.Workspace, error)
}

type SessionMiddleware struct {
	jwtService *jwt.JWTService
	store      WorkspaceStore
	config     config.SessionConfig
	secure     bool
	log        *logrus.Logger
}

func NewSessionMiddleware(jwtService *jwt.JWTService, store WorkspaceStore, cfg config.SessionConfig, secure bool, log *logrus.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		jwtService: jwtService,
		store:      store,
		config:     cfg,
		secure:     secure,
		log:        log,
	}
}

// Attach resolves the workspace named by the session cookie, if any. It
// never allocates one, so anonymous traffic costs nothing.
func (m *SessionMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ws := m.lookup(r); ws != nil {
			r = r.WithContext(context.WithValue(r.Context(), WorkspaceKey, ws))
		}
		next.ServeHTTP(w, r)
	})
}

// Ensure guarantees a workspace for routes that store state. A missing,
// invalid or expired cookie gets a fresh workspace and a new cookie.
func (m *SessionMiddleware) Ensure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetWorkspaceFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		ws := m.lookup(r)
		if ws == nil {
			created, err := m.store.Create()
			if err != nil {
				m.log.WithError(err).Error("Failed to create workspace")
				response.Error(w, http.StatusServiceUnavailable, "Failed to start session, please try again later", nil)
				return
			}

			token, err := m.jwtService.GenerateSessionToken(created.ID)
			if err != nil {
				m.log.WithError(err).Error("Failed to sign session token")
				response.InternalServerError(w, "Failed to start session")
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     m.config.CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(m.jwtService.GetSessionExpiry().Seconds()),
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
			ws = created
		}

		ctx := context.WithValue(r.Context(), WorkspaceKey, ws)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionMiddleware) lookup(r *http.Request) *usecase.Workspace {
	cookie, err := r.Cookie(m.config.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	claims, err := m.jwtService.ValidateToken(cookie.Value)
	if err != nil {
		m.log.WithError(err).Debug("Ignoring invalid session cookie")
		return nil
	}
	ws, err := m.store.Get(claims.SessionID)
	if err != nil {
		return nil
	}
	return ws
}

// RequireUser rejects requests whose session has no current user and points
// the page at the login route.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, ok := GetWorkspaceFromContext(r.Context())
		if !ok || !ws.Session.IsAuthenticated() {
			response.Unauthorized(w, "Please log in to continue", session.LoginRoute)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetWorkspaceFromContext extracts the workspace from context
func GetWorkspaceFromContext(ctx context.Context) (*usecase.Workspace, bool) {
	ws, ok := ctx.Value(WorkspaceKey).(*usecase.Workspace)
	return ws, ok
}
