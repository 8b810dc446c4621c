package dice

// TokenResult tags a parse attempt with its source token. Exactly one of
// Spec and Err is meaningful: Err is nil when the token parsed.
type TokenResult struct {
	Token string
	Spec  RollSpec
	Err   error
}

// ParseTokens parses every token and returns one tagged result per token,
// in input order. Malformed tokens are reported, never dropped, so callers
// decide whether to skip silently or surface a diagnostic.
func ParseTokens(tokens []string) []TokenResult {
	results := make([]TokenResult, 0, len(tokens))
	for _, token := range tokens {
		spec, err := ParseSpec(token)
		results = append(results, TokenResult{Token: token, Spec: spec, Err: err})
	}
	return results
}
