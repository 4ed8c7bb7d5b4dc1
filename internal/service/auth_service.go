package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/user"
)

// AuthService handles signup, login and password recovery.
type AuthService struct {
	storage *storage.Storage
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *storage.Storage) *AuthService {
	return &AuthService{storage: store}
}

// Signup registers a new user. The password is stored as a bcrypt hash and an
// empty professional-details row is created alongside the user.
func (s *AuthService) Signup(ctx context.Context, signup Signup) (uuid.UUID, error) {
	existing, err := s.storage.Users.FindByEmail(ctx, signup.Email)
	if err != nil {
		return uuid.Nil, err
	}
	if existing != nil {
		return uuid.Nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(signup.Password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := s.storage.Users.Insert(ctx, &user.UserCreate{
		Name:                 signup.Name,
		Email:                signup.Email,
		PasswordHash:         string(hash),
		DateOfBirth:          signup.DateOfBirth,
		Gender:               signup.Gender,
		MaritalStatus:        signup.MaritalStatus,
		BloodGroup:           signup.BloodGroup,
		PhysicallyChallenged: signup.PhysicallyChallenged,
		Phone:                signup.Phone,
		PhoneSecondary:       signup.PhoneSecondary,
		Address1:             signup.Address1,
		Address2:             signup.Address2,
		City:                 signup.City,
		State:                signup.State,
		ZipCode:              signup.ZipCode,
		Country:              signup.Country,
		ProfilePhoto:         signup.ProfilePhoto,
	})
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.storage.ProfessionalDetails.Insert(ctx, id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Login verifies an email/password pair against the stored bcrypt hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &Session{
		UserID: row.ID,
		Name:   row.Name,
		Email:  row.Email,
	}, nil
}

// ForgotPassword reports whether an account exists for the email. Passwords
// are hashed, so recovery can only confirm the account and point the user at
// a reset, never return the password itself.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (bool, error) {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return row != nil, nil
}

// ResetPassword replaces a user's password with a new bcrypt hash.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	row.PasswordHash = string(hash)

	updated, err := s.storage.Users.Update(ctx, row)
	if err != nil {
		return err
	}
	if !updated {
		return ErrUserNotFound
	}
	return nil
}
