package dto

// CreateUserRequest is the JSON body for POST /users.
// Username is a pointer so a missing or null field can be told apart from "".
type CreateUserRequest struct {
	Username *string `json:"username"`
}
