package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true)
// and explicit false for the category toggles.
type GenerateRequest struct {
	Length        int    `json:"length"`
	Count         int    `json:"count"`
	Uppercase     *bool  `json:"uppercase"`
	Lowercase     *bool  `json:"lowercase"`
	Digits        *bool  `json:"digits"`
	Symbols       *bool  `json:"symbols"`
	CustomSymbols string `json:"custom_symbols,omitempty"`
	Exclude       string `json:"exclude,omitempty"`
	Include       string `json:"include,omitempty"`
	NoAmbiguous   bool   `json:"no_ambiguous,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords    []string `json:"passwords"`
	Length       int      `json:"length"`
	Count        int      `json:"count"`
	AlphabetSize int      `json:"alphabet_size"`
	EntropyBits  float64  `json:"entropy_bits"`
}

// DigestRequest represents a text digest request.
type DigestRequest struct {
	Algorithm string `json:"algorithm"`
	Text      string `json:"text"`
}

// DigestResponse represents a text digest response.
type DigestResponse struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
}
