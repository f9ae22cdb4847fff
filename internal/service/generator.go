package service

import (
	"errors"
	"math"

	"github.com/oatpass/oatpass-go/internal/charset"
	"github.com/oatpass/oatpass-go/internal/crypto"
	"github.com/oatpass/oatpass-go/internal/model"
)

var (
	ErrLengthRequired = errors.New("password length must be greater than 0")
	ErrCountRequired  = errors.New("password count must be greater than 0")
	ErrLengthTooLong  = errors.New("password length must be at most 256")
	ErrCountTooLarge  = errors.New("password count must be at most 100")
)

const (
	DefaultLength = 12
	DefaultCount  = 1
	MaxLength     = 256
	MaxCount      = 100
)

// GeneratorService handles password generation business logic.
type GeneratorService struct{}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{}
}

// Generate builds the alphabet described by the request and draws the
// requested number of passwords from it.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = DefaultLength
	}
	count := req.Count
	if count == 0 {
		count = DefaultCount
	}

	if length < 0 {
		return model.GenerateResponse{}, ErrLengthRequired
	}
	if count < 0 {
		return model.GenerateResponse{}, ErrCountRequired
	}
	if length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}
	if count > MaxCount {
		return model.GenerateResponse{}, ErrCountTooLarge
	}

	spec := charset.Spec{
		Length:        length,
		Uppercase:     boolOrDefault(req.Uppercase, true),
		Lowercase:     boolOrDefault(req.Lowercase, true),
		Digits:        boolOrDefault(req.Digits, true),
		Symbols:       boolOrDefault(req.Symbols, true),
		CustomSymbols: req.CustomSymbols,
		Exclude:       req.Exclude,
		Include:       req.Include,
		NoAmbiguous:   req.NoAmbiguous,
	}

	alphabet, err := charset.Build(spec)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	passwords, err := crypto.SampleMany(alphabet, length, count)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Passwords:    passwords,
		Length:       length,
		Count:        count,
		AlphabetSize: len(alphabet),
		EntropyBits:  float64(length) * math.Log2(float64(len(alphabet))),
	}, nil
}

// IsValidationError reports whether err is a caller configuration error
// rather than an internal failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthRequired) ||
		errors.Is(err, ErrCountRequired) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrCountTooLarge) ||
		errors.Is(err, charset.ErrEmptyAlphabet) ||
		errors.Is(err, charset.ErrNoUsableCategory)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
