package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/oatpass/oatpass-go/internal/model"
	"github.com/oatpass/oatpass-go/internal/repository"
)

func newTestEntryService() *EntryService {
	return NewEntryService(repository.NewEntryRepository(nil))
}

func TestCreateEntry_EmptyLabel(t *testing.T) {
	svc := newTestEntryService()

	_, err := svc.CreateEntry(context.Background(), 1, model.EntryRequest{
		Label:      "",
		Ciphertext: "dGVzdA==",
	})

	if !errors.Is(err, ErrLabelRequired) {
		t.Errorf("expected ErrLabelRequired, got %v", err)
	}
}

func TestCreateEntry_EmptyCiphertext(t *testing.T) {
	svc := newTestEntryService()

	_, err := svc.CreateEntry(context.Background(), 1, model.EntryRequest{
		Label:      "github",
		Ciphertext: "",
	})

	if !errors.Is(err, ErrCiphertextRequired) {
		t.Errorf("expected ErrCiphertextRequired, got %v", err)
	}
}

func TestCreateEntry_InvalidBase64(t *testing.T) {
	svc := newTestEntryService()

	_, err := svc.CreateEntry(context.Background(), 1, model.EntryRequest{
		Label:      "github",
		Ciphertext: "not base64!!!",
	})

	if err == nil {
		t.Fatal("expected error for invalid base64")
	}
}

func TestUpdateEntry_EmptyLabel(t *testing.T) {
	svc := newTestEntryService()

	_, err := svc.UpdateEntry(context.Background(), 1, 7, model.EntryRequest{
		Label:      "",
		Ciphertext: "dGVzdA==",
	})

	if !errors.Is(err, ErrLabelRequired) {
		t.Errorf("expected ErrLabelRequired, got %v", err)
	}
}

func TestEntryToResponse_Base64(t *testing.T) {
	ciphertext := []byte("encrypted-password-material")

	resp := entryToResponse(&model.Entry{
		ID:         3,
		Label:      "github",
		Ciphertext: ciphertext,
		Length:     20,
	})

	decoded, err := base64.StdEncoding.DecodeString(resp.Ciphertext)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	if string(decoded) != string(ciphertext) {
		t.Errorf("expected %q, got %q", ciphertext, decoded)
	}
	if resp.ID != 3 || resp.Label != "github" || resp.Length != 20 {
		t.Errorf("unexpected response fields: %+v", resp)
	}
}
