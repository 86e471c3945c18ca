package user

import (
	"fmt"
	"time"

	"voyago/models"
	"voyago/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Register creates a new user account after checking for duplicates.
func (s *DefaultUserService) Register(input RegistrationInput) (*models.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Phone == "" {
		return nil, fmt.Errorf("all fields are required")
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Phone:        input.Phone,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	usr.PasswordHash = ""
	return usr, nil
}

// Authenticate verifies the credentials and issues a signed JWT. The token
// hash is stored on the user record and cached so the auth middleware can
// validate requests without a database round trip.
func (s *DefaultUserService) Authenticate(email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return "", nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.IsAdmin, tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateSetDocument(usr.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return "", nil, fmt.Errorf("failed to store token hash: %w", err)
	}
	if err := utils.CacheAuthToken(usr.ID, tokenHash, tokenTTL); err != nil {
		// Cache failures degrade to a DB lookup in the middleware.
		utils.GetLogger().Warn("Authenticate: failed to cache token hash", zap.Error(err))
	}

	usr.PasswordHash = ""
	usr.TokenHash = ""
	return token, usr, nil
}

// GetAll returns all users.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

// Delete removes a user account and evicts any cached token.
func (s *DefaultUserService) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("user ID is required")
	}
	existing, err := s.Repo.GetByIDWithProjection(id, bson.M{"id": 1})
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	if err := utils.EvictAuthToken(id); err != nil {
		utils.GetLogger().Warn("Delete: failed to evict cached token", zap.String("id", id), zap.Error(err))
	}
	return nil
}
