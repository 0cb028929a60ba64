package admin

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "github.com/CorprexAhmed/Corprex-Scheduler/database/repository/user"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
	"github.com/CorprexAhmed/Corprex-Scheduler/utils"
)

const sessionDuration = 24 * time.Hour

// Authenticate verifies credentials against the stored bcrypt hash and
// returns a signed session token on success.
func (s *DefaultAdminService) Authenticate(email, password string) (string, *models.AdminUser, error) {
	user, err := s.Users.GetByEmail(email)
	if errors.Is(err, userRepo.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, sessionDuration)
	if err != nil {
		return "", nil, err
	}

	user.LastLoginAt = time.Now()
	if err := s.Users.Update(user); err != nil {
		utils.GetLogger().Warn("failed to record last login", zap.String("userId", user.ID), zap.Error(err))
	}

	return token, user, nil
}
