package handler

import (
	"net/http"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/usecase"
	"healthhub/pkg/response"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
)

// ResourceHandler serves one list view: GET mounts, POST creates and
// DELETE removes. V is the rendered item.
type ResourceHandler[T usecase.Identifiable, P any, V any] struct {
	name       string
	controller func(*usecase.Workspace) *usecase.ResourceListController[T, P]
	render     func([]T) []V
}

func NewResourceHandler[T usecase.Identifiable, P any, V any](
	name string,
	controller func(*usecase.Workspace) *usecase.ResourceListController[T, P],
	render func([]T) []V,
) *ResourceHandler[T, P, V] {
	return &ResourceHandler[T, P, V]{
		name:       name,
		controller: controller,
		render:     render,
	}
}

func (h *ResourceHandler[T, P, V]) view(c *usecase.ResourceListController[T, P]) dto.ListResponse[V, P] {
	snapshot := c.Snapshot()
	items := h.render(snapshot.Items)
	return dto.ListResponse[V, P]{
		State: string(snapshot.State),
		Items: items,
		Total: len(items),
		Error: snapshot.Error,
		Form:  snapshot.Form,
	}
}

// Mount handles loading the list
// @Router /{resource} [get]
func (h *ResourceHandler[T, P, V]) Mount(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceOrFail(w, r)
	if !ok {
		return
	}
	c := h.controller(ws)

	if err := c.Mount(r.Context()); err != nil {
		writeError(w, err, h.view(c))
		return
	}

	response.Success(w, http.StatusOK, h.name+" retrieved successfully", h.view(c))
}

// Create handles submitting the create form
// @Router /{resource} [post]
func (h *ResourceHandler[T, P, V]) Create(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceOrFail(w, r)
	if !ok {
		return
	}
	c := h.controller(ws)

	var req P
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := c.Create(r.Context(), req); err != nil {
		writeError(w, err, h.view(c))
		return
	}

	response.Success(w, http.StatusCreated, h.name+" created successfully", h.view(c))
}

// Remove handles deleting one entry
// @Router /{resource}/{id} [delete]
func (h *ResourceHandler[T, P, V]) Remove(w http.ResponseWriter, r *http.Request) {
	ws, ok := workspaceOrFail(w, r)
	if !ok {
		return
	}
	c := h.controller(ws)

	id := mux.Vars(r)["id"]
	if id == "" {
		response.Error(w, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	if err := c.Remove(r.Context(), id); err != nil {
		writeError(w, err, h.view(c))
		return
	}

	response.Success(w, http.StatusOK, h.name+" deleted successfully", h.view(c))
}
