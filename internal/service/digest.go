package service

import (
	"errors"

	"github.com/oatpass/oatpass-go/internal/crypto"
	"github.com/oatpass/oatpass-go/internal/model"
)

var ErrTextRequired = errors.New("text is required")

// DigestService handles text digest business logic.
type DigestService struct{}

// NewDigestService creates a new DigestService.
func NewDigestService() *DigestService {
	return &DigestService{}
}

// Digest computes the hex digest of the request text.
func (s *DigestService) Digest(req model.DigestRequest) (model.DigestResponse, error) {
	if req.Text == "" {
		return model.DigestResponse{}, ErrTextRequired
	}

	digest, err := crypto.DigestText(req.Algorithm, req.Text)
	if err != nil {
		return model.DigestResponse{}, err
	}

	return model.DigestResponse{
		Algorithm: req.Algorithm,
		Digest:    digest,
	}, nil
}
