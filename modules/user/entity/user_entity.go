package entity

// User exists in the store for a future admin surface; no endpoint uses it.
// Password is stored as an opaque string.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
