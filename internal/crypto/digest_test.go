package crypto

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDigestText(t *testing.T) {
	tests := []struct {
		algorithm string
		text      string
		want      string
	}{
		{
			algorithm: "md5",
			text:      "hello",
			want:      "5d41402abc4b2a76b9719d911017c592",
		},
		{
			algorithm: "sha256",
			text:      "hello",
			want:      "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			algorithm: "sha512",
			text:      "hello",
			want: "9b71d224bd62f3785d96d46ad3ea3d73319bfbc2890caadae2dff72519673ca7" +
				"2323c3d99ba5c11d7c7acc6e14b8c5da0c4663475c2e5c3adef46f73bcdec043",
		},
		{
			algorithm: "md5",
			text:      "",
			want:      "d41d8cd98f00b204e9800998ecf8427e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm+"/"+tt.text, func(t *testing.T) {
			got, err := DigestText(tt.algorithm, tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DigestText() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDigestText_UnknownAlgorithm(t *testing.T) {
	_, err := DigestText("sha1", "hello")
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestDigestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	got, err := DigestFile("sha256", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got != want {
		t.Errorf("DigestFile() = %s, want %s", got, want)
	}
}

func TestDigestFile_Missing(t *testing.T) {
	_, err := DigestFile("md5", filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
