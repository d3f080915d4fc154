package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/talentwatch/retention-backend-go/internal/domain/reference"
	"github.com/talentwatch/retention-backend-go/internal/handler/http/response"
)

type ReferenceHandler interface {
	ListReferences(w http.ResponseWriter, r *http.Request)
	CreateReference(w http.ResponseWriter, r *http.Request)
	UpdateReference(w http.ResponseWriter, r *http.Request)
	DeleteReference(w http.ResponseWriter, r *http.Request)
}

type referenceHandlerImpl struct {
	referenceService reference.ReferenceService
}

func NewReferenceHandler(referenceService reference.ReferenceService) ReferenceHandler {
	return &referenceHandlerImpl{referenceService: referenceService}
}

func kindFromURL(r *http.Request) (reference.Kind, error) {
	return reference.ParseKind(chi.URLParam(r, "kind"))
}

// ListReferences implements ReferenceHandler
func (h *referenceHandlerImpl) ListReferences(w http.ResponseWriter, r *http.Request) {
	kind, err := kindFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.referenceService.List(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// CreateReference implements ReferenceHandler
func (h *referenceHandlerImpl) CreateReference(w http.ResponseWriter, r *http.Request) {
	kind, err := kindFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req reference.CreateReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.referenceService.Create(r.Context(), kind, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reference created", result)
}

// UpdateReference implements ReferenceHandler
func (h *referenceHandlerImpl) UpdateReference(w http.ResponseWriter, r *http.Request) {
	kind, err := kindFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Reference ID is required", nil)
		return
	}

	var req reference.UpdateReferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.referenceService.Update(r.Context(), kind, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// DeleteReference implements ReferenceHandler
func (h *referenceHandlerImpl) DeleteReference(w http.ResponseWriter, r *http.Request) {
	kind, err := kindFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Reference ID is required", nil)
		return
	}

	if err := h.referenceService.Delete(r.Context(), kind, id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
