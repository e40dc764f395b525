package models

// User is the JSON shape returned by POST /users.
type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}
