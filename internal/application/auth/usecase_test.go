package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jawharapos/pos-api/internal/application/auth"
	"github.com/jawharapos/pos-api/internal/application/dto"
	"github.com/jawharapos/pos-api/internal/domain"
	"github.com/jawharapos/pos-api/internal/domain/entity"
)

type fakeUserRepo struct {
	users       map[string]*entity.User // keyed by email
	findErr     error
	createCalls int
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.createCalls++
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.users[email], nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func buildAuth(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret: "test-secret", ExpMinutes: 60, Issuer: "pos-api",
	})
}

func TestSignup_CreatesAdminWithHashedPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := buildAuth(repo)

	out, err := uc.Signup(dto.SignupRequest{Name: "Saleh", Email: " Saleh@Jawhara.Local ", Password: "changeme"})
	require.NoError(t, err)

	assert.Equal(t, "saleh@jawhara.local", out.Email)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	stored := repo.users["saleh@jawhara.local"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "changeme", stored.PasswordHash)
}

func TestSignup_DuplicateEmailRejected(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := buildAuth(repo)

	_, err := uc.Signup(dto.SignupRequest{Email: "saleh@jawhara.local", Password: "changeme"})
	require.NoError(t, err)

	_, err = uc.Signup(dto.SignupRequest{Email: "saleh@jawhara.local", Password: "other"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Equal(t, 1, repo.createCalls)
}

// A failing uniqueness lookup must surface as an error, not fall through to
// account creation.
func TestSignup_LookupFailureBlocksCreation(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &fakeUserRepo{users: map[string]*entity.User{}, findErr: repoErr}
	uc := buildAuth(repo)

	_, err := uc.Signup(dto.SignupRequest{Email: "saleh@jawhara.local", Password: "changeme"})
	assert.ErrorIs(t, err, repoErr)
	assert.Zero(t, repo.createCalls)
}

func TestSignup_MissingFieldsRejected(t *testing.T) {
	uc := buildAuth(&fakeUserRepo{users: map[string]*entity.User{}})

	_, err := uc.Signup(dto.SignupRequest{Email: "  ", Password: "changeme"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Signup(dto.SignupRequest{Email: "saleh@jawhara.local"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_ReturnsTokenForValidCredentials(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := buildAuth(repo)

	_, err := uc.Signup(dto.SignupRequest{Name: "Saleh", Email: "saleh@jawhara.local", Password: "changeme"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "saleh@jawhara.local", Password: "changeme"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "saleh@jawhara.local", out.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{}}
	uc := buildAuth(repo)

	_, err := uc.Signup(dto.SignupRequest{Email: "saleh@jawhara.local", Password: "changeme"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "saleh@jawhara.local", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := buildAuth(&fakeUserRepo{users: map[string]*entity.User{}})

	_, err := uc.Login(dto.LoginRequest{Email: "ghost@jawhara.local", Password: "changeme"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
