package user

import (
	"github.com/jun-uen0/hello-users/internal/models"
)

// PlaceholderID is the id every created user gets. Nothing is stored, so there is no sequence to draw from.
const PlaceholderID uint64 = 1

// Service holds user use-case logic.
type Service struct{}

// NewService returns a new user service.
func NewService() *Service {
	return &Service{}
}

// Create builds the user for username. It never fails and never remembers anything.
func (s *Service) Create(username string) models.User {
	return models.User{
		ID:       PlaceholderID,
		Username: username,
	}
}
