package usecase

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthhub/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_LogoutResetsViews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"_id":"1","title":"GP","notifyAt":"2024-05-01T09:00","status":"completed"}]`)
	}))
	defer server.Close()

	ws, err := NewWorkspace("ws-1", server.URL+"/api", testLogger(), testValidator)
	require.NoError(t, err)

	_, err = ws.Auth.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: "x", Token: "t"})
	require.NoError(t, err)
	require.NoError(t, ws.Appointments.Mount(context.Background()))
	require.NoError(t, ws.History.Mount(context.Background()))
	ws.Facilities.DenyGeolocation()
	assert.Len(t, ws.Appointments.Snapshot().Items, 1)

	ws.Auth.Logout()

	assert.Equal(t, ListStateIdle, ws.Appointments.Snapshot().State)
	assert.Empty(t, ws.Appointments.Snapshot().Items)
	items, _, _ := ws.History.View(HistoryFilterAll)
	assert.Empty(t, items)
	assert.False(t, ws.Facilities.View().GeolocationDenied)
	assert.False(t, ws.client.HasCredential())
}

func TestNewWorkspace_RejectsBadBaseURL(t *testing.T) {
	_, err := NewWorkspace("ws-1", "not a url", testLogger(), testValidator)
	assert.Error(t, err)
}
