package handler

import (
	"errors"
	"net/http"

	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/session"
	"healthhub/internal/usecase"
	"healthhub/pkg/apperror"
	"healthhub/pkg/response"
)

// writeError maps an operation error to the HTTP answer. data is the view
// state the page keeps rendering next to the error, and may be nil.
func writeError(w http.ResponseWriter, err error, data interface{}) {
	if errors.Is(err, session.ErrUnauthenticated) {
		response.Unauthorized(w, "Please log in to continue", session.LoginRoute)
		return
	}
	if errors.Is(err, usecase.ErrGeolocationDenied) {
		response.ErrorWithData(w, http.StatusConflict, err.Error(), nil, data)
		return
	}

	appErr, ok := apperror.As(err)
	if !ok {
		response.ErrorWithData(w, http.StatusInternalServerError, apperror.UserMessage(err), nil, data)
		return
	}

	switch e := appErr.(type) {
	case *apperror.ValidationError:
		response.ErrorWithData(w, http.StatusBadRequest, e.UserMessage(), e.Fields, data)
	case *apperror.RemoteError:
		status := http.StatusBadGateway
		if e.Status >= 400 && e.Status < 500 {
			status = e.Status
		}
		response.ErrorWithData(w, status, e.UserMessage(), nil, data)
	default:
		response.ErrorWithData(w, http.StatusBadGateway, appErr.UserMessage(), nil, data)
	}
}

func workspaceOrFail(w http.ResponseWriter, r *http.Request) (*usecase.Workspace, bool) {
	ws, ok := middleware.GetWorkspaceFromContext(r.Context())
	if !ok {
		response.InternalServerError(w, "Session is not available")
		return nil, false
	}
	return ws, true
}
