package dto

// TokenRequest carries the caller-supplied identity claim. Neither field is
// validated; the token issuer signs whatever it is given.
type TokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
