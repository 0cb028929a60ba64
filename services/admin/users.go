package admin

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

// CreateUser registers a new dashboard account with a bcrypt-hashed password.
func (s *DefaultAdminService) CreateUser(input models.AdminUserInput) (*models.AdminUser, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = models.RoleAdmin
	}

	user := &models.AdminUser{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetAllUsers returns all dashboard accounts.
func (s *DefaultAdminService) GetAllUsers() ([]models.AdminUser, error) {
	return s.Users.GetAll()
}

// UpdateUser modifies an account's name, email, role, or password.
func (s *DefaultAdminService) UpdateUser(id string, input models.AdminUserInput) (*models.AdminUser, error) {
	user, err := s.Users.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = strings.TrimSpace(input.Name)
	}
	if input.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(input.Email))
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.Users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a dashboard account.
func (s *DefaultAdminService) DeleteUser(id string) error {
	return s.Users.Delete(id)
}
