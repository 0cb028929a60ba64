package userRepo

import (
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

// UserRepository defines data access for admin dashboard accounts.
type UserRepository interface {
	// GetByID retrieves an account by its unique ID.
	GetByID(id string) (*models.AdminUser, error)
	// GetByEmail retrieves an account by its email address.
	GetByEmail(email string) (*models.AdminUser, error)
	// GetAll retrieves all accounts.
	GetAll() ([]models.AdminUser, error)
	// Create inserts a new account record.
	Create(user *models.AdminUser) error
	// Update modifies an existing account record.
	Update(user *models.AdminUser) error
	// Delete removes an account record by its ID.
	Delete(id string) error
}
