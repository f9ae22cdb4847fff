package service

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/oatpass/oatpass-go/internal/model"
	"github.com/oatpass/oatpass-go/internal/repository"
)

var (
	ErrLabelRequired      = errors.New("label is required")
	ErrCiphertextRequired = errors.New("ciphertext is required")
	ErrEntryNotFound      = errors.New("entry not found")
)

// EntryService handles saved password entry business logic.
type EntryService struct {
	repo *repository.EntryRepository
}

// NewEntryService creates a new EntryService.
func NewEntryService(repo *repository.EntryRepository) *EntryService {
	return &EntryService{repo: repo}
}

// CreateEntry saves a new entry for a user.
func (s *EntryService) CreateEntry(ctx context.Context, userID int64, req model.EntryRequest) (model.EntryResponse, error) {
	entry, err := entryFromRequest(userID, req)
	if err != nil {
		return model.EntryResponse{}, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return model.EntryResponse{}, err
	}

	stored, err := s.repo.GetByID(ctx, userID, entry.ID)
	if err != nil {
		return model.EntryResponse{}, err
	}

	return entryToResponse(stored), nil
}

// UpdateEntry replaces the label and ciphertext of an existing entry.
func (s *EntryService) UpdateEntry(ctx context.Context, userID, id int64, req model.EntryRequest) (model.EntryResponse, error) {
	entry, err := entryFromRequest(userID, req)
	if err != nil {
		return model.EntryResponse{}, err
	}
	entry.ID = id

	if err := s.repo.Update(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return model.EntryResponse{}, ErrEntryNotFound
		}
		return model.EntryResponse{}, err
	}

	stored, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return model.EntryResponse{}, err
	}

	return entryToResponse(stored), nil
}

// DeleteEntry removes an entry.
func (s *EntryService) DeleteEntry(ctx context.Context, userID, id int64) error {
	err := s.repo.Delete(ctx, userID, id)
	if errors.Is(err, repository.ErrEntryNotFound) {
		return ErrEntryNotFound
	}
	return err
}

// ListEntries returns all entries for a user.
func (s *EntryService) ListEntries(ctx context.Context, userID int64) ([]model.EntryResponse, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.EntryResponse, len(entries))
	for i := range entries {
		result[i] = entryToResponse(&entries[i])
	}
	return result, nil
}

func entryFromRequest(userID int64, req model.EntryRequest) (*model.Entry, error) {
	if req.Label == "" {
		return nil, ErrLabelRequired
	}
	if req.Ciphertext == "" {
		return nil, ErrCiphertextRequired
	}

	data, err := base64.StdEncoding.DecodeString(req.Ciphertext)
	if err != nil {
		return nil, err
	}

	return &model.Entry{
		UserID:     userID,
		Label:      req.Label,
		Ciphertext: data,
		Length:     req.Length,
	}, nil
}

func entryToResponse(e *model.Entry) model.EntryResponse {
	return model.EntryResponse{
		ID:         e.ID,
		Label:      e.Label,
		Ciphertext: base64.StdEncoding.EncodeToString(e.Ciphertext),
		Length:     e.Length,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
