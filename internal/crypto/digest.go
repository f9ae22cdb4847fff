package crypto

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
)

var ErrUnknownAlgorithm = errors.New("unsupported digest algorithm")

// DigestAlgorithms lists the supported algorithm names in display order.
var DigestAlgorithms = []string{"md5", "sha256", "sha512"}

func newDigest(algorithm string) (hash.Hash, error) {
	switch algorithm {
	case "md5":
		return md5.New(), nil
	case "sha256":
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

// DigestText returns the hex-encoded digest of text under the named algorithm.
func DigestText(algorithm, text string) (string, error) {
	h, err := newDigest(algorithm)
	if err != nil {
		return "", err
	}
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// DigestFile returns the hex-encoded digest of the file's contents.
// The file is streamed, not read into memory at once.
func DigestFile(algorithm, path string) (string, error) {
	h, err := newDigest(algorithm)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading file %q: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("reading file %q: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
