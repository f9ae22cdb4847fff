package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

var ErrEmptyAlphabet = errors.New("alphabet must not be empty")

// Sample draws length characters from alphabet, each chosen independently
// and uniformly with replacement using crypto/rand. The alphabet's order
// does not affect the distribution.
func Sample(alphabet []rune, length int) (string, error) {
	if len(alphabet) == 0 {
		return "", ErrEmptyAlphabet
	}

	size := big.NewInt(int64(len(alphabet)))

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		b.WriteRune(alphabet[n.Int64()])
	}

	return b.String(), nil
}

// SampleMany produces count independent strings of the given length.
// No state is shared between draws.
func SampleMany(alphabet []rune, length, count int) ([]string, error) {
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		p, err := Sample(alphabet, length)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, p)
	}
	return passwords, nil
}
