package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oatpass/oatpass-go/internal/middleware"
	"github.com/oatpass/oatpass-go/internal/model"
	"github.com/oatpass/oatpass-go/internal/service"
)

// EntryHandler handles HTTP requests for saved password entries.
type EntryHandler struct {
	service *service.EntryService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(svc *service.EntryService) *EntryHandler {
	return &EntryHandler{service: svc}
}

// HandleListEntries handles GET /api/v1/entries requests.
func (h *EntryHandler) HandleListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	entries, err := h.service.ListEntries(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	if entries == nil {
		entries = []model.EntryResponse{}
	}

	writeJSON(w, http.StatusOK, entries)
}

// HandleCreateEntry handles POST /api/v1/entries requests.
func (h *EntryHandler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.EntryRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	resp, err := h.service.CreateEntry(r.Context(), userID, req)
	if err != nil {
		h.writeEntryError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdateEntry handles PUT /api/v1/entries/{id} requests.
func (h *EntryHandler) HandleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, err := entryID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid entry id"))
		return
	}

	var req model.EntryRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateEntry(r.Context(), userID, id, req)
	if err != nil {
		h.writeEntryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeleteEntry handles DELETE /api/v1/entries/{id} requests.
func (h *EntryHandler) HandleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, err := entryID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid entry id"))
		return
	}

	if err := h.service.DeleteEntry(r.Context(), userID, id); err != nil {
		h.writeEntryError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EntryHandler) writeEntryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrLabelRequired), errors.Is(err, service.ErrCiphertextRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrEntryNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func entryID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
