package handler

import (
	"net/http"

	"healthhub/internal/converter"
	"healthhub/internal/delivery/dto"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/domain/entity"
	"healthhub/internal/usecase"
	"healthhub/pkg/response"

	"github.com/goccy/go-json"
)

type FacilityHandler struct{}

func NewFacilityHandler() *FacilityHandler {
	return &FacilityHandler{}
}

func facilityView(search *usecase.FacilitySearch) dto.FacilityListResponse {
	var view usecase.FacilityView
	if search != nil {
		view = search.View()
	}
	types := make([]string, len(entity.FacilityTypes))
	for i, t := range entity.FacilityTypes {
		types[i] = string(t)
	}
	return dto.FacilityListResponse{
		Types:             types,
		Facilities:        converter.FacilitiesToResponses(view.Results),
		Total:             len(view.Results),
		GeolocationDenied: view.GeolocationDenied,
		Error:             view.Error,
	}
}

// Mount handles loading the facilities page
// @Router /facilities [get]
func (h *FacilityHandler) Mount(w http.ResponseWriter, r *http.Request) {
	ws, ok := middleware.GetWorkspaceFromContext(r.Context())
	if !ok {
		// a fresh page has nothing to reset yet
		response.Success(w, http.StatusOK, "Facility search ready", facilityView(nil))
		return
	}

	ws.Facilities.Mount()

	response.Success(w, http.StatusOK, "Facility search ready", facilityView(ws.Facilities))
}

// Search handles a nearby facility search
// @Summary Search facilities near a location
// @Tags Facilities
// @Accept json
// @Produce json
// @Param request body dto.FacilitySearchRequest true "Search Request"
// @Success 200 {object} response.Response
// @Router /facilities/search [post]
func (h *FacilityHandler) Search(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceOrFail(w, r)
	if !ok {
		return
	}

	var req dto.FacilitySearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if _, err := ws.Facilities.Search(r.Context(), &req); err != nil {
		writeError(w, err, facilityView(ws.Facilities))
		return
	}

	response.Success(w, http.StatusOK, "Facilities retrieved successfully", facilityView(ws.Facilities))
}

// DenyGeolocation records that the browser refused location access
// @Router /facilities/geolocation-denied [post]
func (h *FacilityHandler) DenyGeolocation(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceOrFail(w, r)
	if !ok {
		return
	}

	ws.Facilities.DenyGeolocation()

	response.Success(w, http.StatusOK, usecase.ErrGeolocationDenied.Error(), facilityView(ws.Facilities))
}
