package models

// Identity is the resolved authenticated principal for the current request or
// session. Credential management lives outside this service; an Identity is
// only ever produced by validating an externally issued token.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}
