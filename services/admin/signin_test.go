package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userRepo "github.com/CorprexAhmed/Corprex-Scheduler/database/repository/user"
	"github.com/CorprexAhmed/Corprex-Scheduler/models"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	byID map[string]*models.AdminUser
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*models.AdminUser)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.AdminUser, error) {
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.AdminUser, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) GetAll() ([]models.AdminUser, error) {
	out := make([]models.AdminUser, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(user *models.AdminUser) error {
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(user *models.AdminUser) error {
	if _, ok := r.byID[user.ID]; !ok {
		return userRepo.ErrNotFound
	}
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return userRepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func newTestAdminService() (*DefaultAdminService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return &DefaultAdminService{Users: repo}, repo
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, repo := newTestAdminService()

	user, err := svc.CreateUser(models.AdminUserInput{
		Name:     "Ahmed",
		Email:    "Ahmed@Corprex.io",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ahmed@corprex.io", user.Email, "emails are normalized to lower case")
	assert.Equal(t, models.RoleAdmin, user.Role, "role defaults to admin")
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NotContains(t, user.PasswordHash, "hunter22")

	stored, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.PasswordHash, stored.PasswordHash)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestAdminService()

	_, err := svc.CreateUser(models.AdminUserInput{
		Name:     "Ahmed",
		Email:    "ahmed@corprex.io",
		Password: "hunter22",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, user, err := svc.Authenticate("ahmed@corprex.io", "hunter22")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "ahmed@corprex.io", user.Email)
		assert.False(t, user.LastLoginAt.IsZero())
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Authenticate("ahmed@corprex.io", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Authenticate("nobody@corprex.io", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc, _ := newTestAdminService()

	user, err := svc.CreateUser(models.AdminUserInput{
		Email:    "ops@corprex.io",
		Password: "first-password",
	})
	require.NoError(t, err)
	oldHash := user.PasswordHash

	updated, err := svc.UpdateUser(user.ID, models.AdminUserInput{Password: "second-password"})
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, updated.PasswordHash)

	_, _, err = svc.Authenticate("ops@corprex.io", "second-password")
	assert.NoError(t, err)
	_, _, err = svc.Authenticate("ops@corprex.io", "first-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
