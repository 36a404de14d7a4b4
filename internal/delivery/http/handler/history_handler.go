package handler

import (
	"net/http"

	"healthhub/internal/converter"
	"healthhub/internal/delivery/dto"
	"healthhub/internal/usecase"
	"healthhub/pkg/response"
)

type HistoryHandler struct{}

func NewHistoryHandler() *HistoryHandler {
	return &HistoryHandler{}
}

// GetHistory handles the medical history view
// @Summary Medical history
// @Description Past and upcoming appointments, newest first, filtered by status
// @Tags History
// @Produce json
// @Param filter query string false "all, completed, upcoming or cancelled"
// @Success 200 {object} response.Response
// @Router /history [get]
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceOrFail(w, r)
	if !ok {
		return
	}

	filter := usecase.ParseHistoryFilter(r.URL.Query().Get("filter"))
	mountErr := ws.History.Mount(r.Context())

	items, state, errMsg := ws.History.View(filter)
	view := dto.HistoryResponse{
		Filter: string(filter),
		State:  string(state),
		Items:  converter.AppointmentsToResponses(items),
		Total:  len(items),
		Error:  errMsg,
	}

	if mountErr != nil {
		writeError(w, mountErr, view)
		return
	}

	response.Success(w, http.StatusOK, "Medical history retrieved successfully", view)
}
