package handler

import (
	"errors"
	"net/http"

	"github.com/oatpass/oatpass-go/internal/crypto"
	"github.com/oatpass/oatpass-go/internal/model"
	"github.com/oatpass/oatpass-go/internal/service"
)

// DigestHandler handles HTTP requests for text digests.
type DigestHandler struct {
	service *service.DigestService
}

// NewDigestHandler creates a new DigestHandler.
func NewDigestHandler(svc *service.DigestService) *DigestHandler {
	return &DigestHandler{service: svc}
}

// HandleDigest handles POST /api/v1/digest requests.
func (h *DigestHandler) HandleDigest(w http.ResponseWriter, r *http.Request) {
	var req model.DigestRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	resp, err := h.service.Digest(req)
	if err != nil {
		if errors.Is(err, service.ErrTextRequired) || errors.Is(err, crypto.ErrUnknownAlgorithm) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
