package user

import (
	"errors"

	userRepo "voyago/database/repository/user"
	"voyago/models"
)

var (
	// ErrUserExists is returned when registering with a taken email or phone.
	ErrUserExists = errors.New("a user with this email or phone already exists")
	// ErrInvalidCredentials is returned for a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when a user does not exist.
	ErrNotFound = errors.New("user not found")
)

// RegistrationInput carries the fields of a registration request.
type RegistrationInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Service manages user accounts and authentication.
type Service interface {
	// Register creates a new user account with a bcrypt password hash.
	Register(input RegistrationInput) (*models.User, error)
	// Authenticate verifies credentials and issues a signed token.
	Authenticate(email, password string) (string, *models.User, error)
	// GetAll returns all users with credential fields stripped.
	GetAll() ([]models.User, error)
	// Delete removes a user account.
	Delete(id string) error
}

// DefaultUserService is the production implementation of Service.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
