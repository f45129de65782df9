package service

import (
	"testing"

	"wims/internal/auth"
	"wims/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserService(users *mockUserRepo, departments *mockDeptRepo) *UserService {
	if departments == nil {
		departments = &mockDeptRepo{}
	}
	return NewUserService(users, departments, zap.NewNop())
}

func rolePtr(r models.Role) *models.Role { return &r }
func uintPtr(v uint) *uint               { return &v }
func boolPtr(v bool) *bool               { return &v }
func strPtr(s string) *string            { return &s }

func TestUserServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft UserDraft
	}{
		{name: "missing login id", draft: UserDraft{Email: "j@x.com", Password: "pw"}},
		{name: "missing email", draft: UserDraft{LoginID: "jdoe", Password: "pw"}},
		{name: "missing password", draft: UserDraft{LoginID: "jdoe", Email: "j@x.com"}},
		{name: "blank login id", draft: UserDraft{LoginID: "   ", Email: "j@x.com", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{}
			svc := newUserService(repo, nil)

			_, err := svc.Create(tt.draft)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, repo.created, "no row may be written")
		})
	}
}

func TestUserServiceCreateDuplicates(t *testing.T) {
	draft := UserDraft{LoginID: "jdoe", Email: "j@x.com", Password: "pw"}

	repo := &mockUserRepo{existsLoginID: true}
	_, err := newUserService(repo, nil).Create(draft)
	assert.ErrorIs(t, err, ErrDuplicateLoginID)
	assert.Nil(t, repo.created)

	repo = &mockUserRepo{existsEmail: true}
	_, err = newUserService(repo, nil).Create(draft)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Nil(t, repo.created)
}

func TestUserServiceCreate(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newUserService(repo, nil)

	user, err := svc.Create(UserDraft{
		LoginID:      "jdoe",
		Email:        "j@x.com",
		Password:     "pw",
		Name:         "John Doe",
		Role:         rolePtr(models.RoleLabAnalyst),
		DepartmentID: uintPtr(3),
		Code:         "E-100",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.Equal(t, "jdoe", user.LoginID)
	assert.NotEqual(t, "pw", user.PasswordHash, "password is stored hashed")
	assert.True(t, auth.CheckPassword("pw", user.PasswordHash))
	assert.Equal(t, models.RoleLabAnalyst, user.Role)
	require.NotNil(t, user.DepartmentID)
	assert.Equal(t, uint(3), *user.DepartmentID)
	require.NotNil(t, user.Code)
	assert.Equal(t, "E-100", *user.Code)
	assert.True(t, user.IsActive)
}

func TestUserServiceCreateDefaults(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newUserService(repo, nil)

	user, err := svc.Create(UserDraft{LoginID: "jdoe", Email: "j@x.com", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, models.RoleGeneralUser, user.Role)
	assert.Nil(t, user.DepartmentID)
	assert.Nil(t, user.Code, "empty code must stay NULL")
	assert.Nil(t, user.Name)
	assert.True(t, user.IsActive)
}

func TestUserServiceUpdateNotFound(t *testing.T) {
	repo := &mockUserRepo{byID: map[uint]*models.User{}}
	svc := newUserService(repo, nil)

	_, err := svc.Update(99, UserDraft{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserServiceUpdate(t *testing.T) {
	existing := &models.User{
		ID:           1,
		LoginID:      "jdoe",
		PasswordHash: "hash",
		Email:        strPtr("old@x.com"),
		Role:         models.RoleGeneralUser,
		DepartmentID: uintPtr(3),
		Code:         strPtr("E-100"),
		IsActive:     true,
	}
	repo := &mockUserRepo{byID: map[uint]*models.User{1: existing}}
	svc := newUserService(repo, nil)

	updated, err := svc.Update(1, UserDraft{
		LoginID:  "ignored",
		Password: "ignored",
		Email:    "new@x.com",
		Name:     "John",
		Role:     rolePtr(models.RoleLabManager),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.saved)

	assert.Equal(t, "jdoe", updated.LoginID, "login id is immutable")
	assert.Equal(t, "hash", updated.PasswordHash, "password is never touched here")
	assert.Equal(t, "new@x.com", *updated.Email)
	assert.Equal(t, "John", *updated.Name)
	assert.Equal(t, models.RoleLabManager, updated.Role)
	assert.Nil(t, updated.DepartmentID, "omitted department clears the link")
	assert.Nil(t, updated.Code, "empty code is stored as NULL")
	assert.False(t, updated.IsActive)
}

func TestUserServiceUpdateKeepsUnsubmittedFields(t *testing.T) {
	existing := &models.User{
		ID:      1,
		LoginID: "jdoe",
		Email:   strPtr("old@x.com"),
		Name:    strPtr("John"),
		Role:    models.RoleLabManager,
	}
	repo := &mockUserRepo{byID: map[uint]*models.User{1: existing}}
	svc := newUserService(repo, nil)

	updated, err := svc.Update(1, UserDraft{DepartmentID: uintPtr(7)})
	require.NoError(t, err)

	assert.Equal(t, "old@x.com", *updated.Email)
	assert.Equal(t, "John", *updated.Name)
	assert.Equal(t, models.RoleLabManager, updated.Role)
	assert.Equal(t, uint(7), *updated.DepartmentID)
}

func TestUserServiceDelete(t *testing.T) {
	tests := []struct {
		name    string
		id      uint
		user    *models.User
		wantErr error
	}{
		{name: "not found", id: 99, wantErr: ErrNotFound},
		{
			name:    "admin is protected",
			id:      1,
			user:    &models.User{ID: 1, LoginID: "root", Role: models.RoleAdmin},
			wantErr: ErrProtectedRole,
		},
		{
			name: "regular user deleted",
			id:   2,
			user: &models.User{ID: 2, LoginID: "jdoe", Role: models.RoleGeneralUser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{byID: map[uint]*models.User{}}
			if tt.user != nil {
				repo.byID[tt.user.ID] = tt.user
			}
			svc := newUserService(repo, nil)

			err := svc.Delete(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, repo.deleted, "no row may be removed")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.user, repo.deleted)
		})
	}
}
