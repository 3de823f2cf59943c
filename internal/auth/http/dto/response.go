package dto

// SessionResponse is returned by session endpoints. Tokens travel only in
// HttpOnly cookies, never in the body.
type SessionResponse struct {
	Detail string `json:"detail"`
}
