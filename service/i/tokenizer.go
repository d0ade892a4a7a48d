package i

import "time"

// Tokenizer issues and checks the bearer tokens that guard solution requests.
type Tokenizer interface {
	// Generate signs claims into a token that expires after ttl.
	Generate(claims map[string]interface{}, ttl time.Duration) (string, error)

	// Decode returns the claims of a valid, unexpired token.
	Decode(token string) (map[string]interface{}, error)
}
