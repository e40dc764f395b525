package user

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	json "github.com/go-json-experiment/json"

	"github.com/jun-uen0/hello-users/internal/user/dto"
)

// MaxRequestBodyBytes is the maximum size of a POST /users body (2MB).
const MaxRequestBodyBytes = 2 << 20

// Handler handles user HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler returns a new user handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /users.
//
//	@Summary		Create a user
//	@Description	Echoes the username back. The id is always 1.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.CreateUserRequest	true	"User to create"
//	@Success		201		{object}	models.User
//	@Failure		400		{object}	map[string]string
//	@Failure		413		{object}	map[string]string
//	@Router			/users [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	username, err := DecodeCreateRequest(r.Body)
	if err != nil {
		if status, msg := MapDecodeError(err); status != 0 {
			slog.Debug("create user rejected", "handler", "Create", "err", err)
			WriteError(w, status, msg)
			return
		}
		slog.Error("create user failed", "handler", "Create", "err", err)
		WriteError(w, http.StatusInternalServerError, msgInternal)
		return
	}
	WriteJSON(w, http.StatusCreated, h.svc.Create(username))
}

// DecodeCreateRequest reads the whole body as exactly one JSON object and returns its username.
//
// Member names match case-sensitively, duplicate names and invalid UTF-8 (including
// unpaired surrogate escapes) are rejected, unknown members are ignored, and only
// whitespace may follow the object.
func DecodeCreateRequest(body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return "", fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, maxBytesErr.Limit)
		}
		return "", fmt.Errorf("%w: read body: %v", ErrInvalidJSON, err)
	}
	var req dto.CreateUserRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if req.Username == nil {
		return "", ErrUsernameRequired
	}
	return *req.Username, nil
}
