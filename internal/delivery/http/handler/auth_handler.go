package handler

import (
	"net/http"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/session"
	"healthhub/pkg/response"

	"github.com/goccy/go-json"
)

// AuthHandler drives the session of the calling workspace.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Signup handles account creation
// @Summary Create an account
// @Description Creates the account on the remote service, the user still has to log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceOrFail(w, r)
	if !ok {
		return
	}

	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := ws.Auth.Signup(r.Context(), &req); err != nil {
		writeError(w, err, nil)
		return
	}

	response.SuccessWithRedirect(w, http.StatusCreated, "Account created, please log in", nil, session.LoginRoute)
}

// Login handles storing the user in the session
// @Summary Login user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceOrFail(w, r)
	if !ok {
		return
	}

	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	user, err := ws.Auth.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err, nil)
		return
	}

	response.Success(w, http.StatusOK, "Login successful", user)
}

// Logout handles clearing the session
// @Summary Logout user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// without a workspace there is nobody to log out
	if ws, ok := middleware.GetWorkspaceFromContext(r.Context()); ok {
		ws.Auth.Logout()
	}

	response.SuccessWithRedirect(w, http.StatusOK, "Logout successful", nil, session.LoginRoute)
}

// GetProfile handles the profile view
// @Summary Current user profile with BMI
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceOrFail(w, r)
	if !ok {
		return
	}

	profile, err := ws.Auth.GetProfile(r.Context())
	if err != nil {
		writeError(w, err, nil)
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}
