package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/user"
)

func newTestAuthService() (*AuthService, *mockUserTable, *mockProfessionalDetailsTable) {
	users := &mockUserTable{}
	details := &mockProfessionalDetailsTable{}
	store := &storage.Storage{Users: users, ProfessionalDetails: details}
	return NewAuthService(store), users, details
}

func TestSignup_HashesPasswordAndCreatesProfessionalRow(t *testing.T) {
	svc, users, details := newTestAuthService()

	expectedID := uuid.Must(uuid.NewV4())

	users.On("FindByEmail", mock.Anything, "jamie@example.com").Return(nil, nil)
	users.On("Insert", mock.Anything, mock.MatchedBy(func(c *user.UserCreate) bool {
		if c.PasswordHash == "hunter2" || c.PasswordHash == "" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("hunter2")) == nil
	})).Return(expectedID, nil)
	details.On("Insert", mock.Anything, expectedID).Return(nil)

	id, err := svc.Signup(context.Background(), Signup{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "hunter2",
	})

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
	users.AssertExpectations(t)
	details.AssertExpectations(t)
}

func TestSignup_EmailTaken(t *testing.T) {
	svc, users, _ := newTestAuthService()

	users.On("FindByEmail", mock.Anything, "jamie@example.com").
		Return(&user.User{Email: "jamie@example.com"}, nil)

	id, err := svc.Signup(context.Background(), Signup{
		Email:    "jamie@example.com",
		Password: "hunter2",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, uuid.Nil, id)
	users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	svc, users, _ := newTestAuthService()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)

	userID := uuid.Must(uuid.NewV4())
	users.On("FindByEmail", mock.Anything, "jamie@example.com").Return(&user.User{
		ID:           userID,
		Name:         "Jamie",
		Email:        "jamie@example.com",
		PasswordHash: string(hash),
	}, nil)

	session, err := svc.Login(context.Background(), "jamie@example.com", "hunter2")

	assert.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, "Jamie", session.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users, _ := newTestAuthService()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)

	users.On("FindByEmail", mock.Anything, "jamie@example.com").Return(&user.User{
		Email:        "jamie@example.com",
		PasswordHash: string(hash),
	}, nil)

	session, err := svc.Login(context.Background(), "jamie@example.com", "swordfish")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, session)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, users, _ := newTestAuthService()

	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	session, err := svc.Login(context.Background(), "nobody@example.com", "hunter2")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, session)
}

func TestForgotPassword_ReportsExistence(t *testing.T) {
	svc, users, _ := newTestAuthService()

	users.On("FindByEmail", mock.Anything, "jamie@example.com").
		Return(&user.User{Email: "jamie@example.com"}, nil)
	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	exists, err := svc.ForgotPassword(context.Background(), "jamie@example.com")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestResetPassword_ReplacesHash(t *testing.T) {
	svc, users, _ := newTestAuthService()

	oldHash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)

	row := &user.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        "jamie@example.com",
		PasswordHash: string(oldHash),
	}
	users.On("FindByEmail", mock.Anything, "jamie@example.com").Return(row, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("swordfish")) == nil
	})).Return(true, nil)

	err = svc.ResetPassword(context.Background(), "jamie@example.com", "swordfish")

	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestResetPassword_UnknownUser(t *testing.T) {
	svc, users, _ := newTestAuthService()

	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	err := svc.ResetPassword(context.Background(), "nobody@example.com", "swordfish")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSignup_StorageError(t *testing.T) {
	svc, users, _ := newTestAuthService()

	users.On("FindByEmail", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := svc.Signup(context.Background(), Signup{Email: "jamie@example.com", Password: "x"})

	assert.EqualError(t, err, "connection refused")
}
