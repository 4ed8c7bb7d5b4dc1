package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record. PasswordHash holds a bcrypt hash; the
// plaintext password is never stored.
type User struct {
	ID                   uuid.UUID
	Name                 string
	Email                string
	PasswordHash         string
	DateOfBirth          string
	Gender               string
	MaritalStatus        string
	BloodGroup           string
	PhysicallyChallenged string
	Phone                string
	PhoneSecondary       string
	Address1             string
	Address2             string
	City                 string
	State                string
	ZipCode              string
	Country              string
	ProfilePhoto         string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Name                 string
	Email                string
	PasswordHash         string
	DateOfBirth          string
	Gender               string
	MaritalStatus        string
	BloodGroup           string
	PhysicallyChallenged string
	Phone                string
	PhoneSecondary       string
	Address1             string
	Address2             string
	City                 string
	State                string
	ZipCode              string
	Country              string
	ProfilePhoto         string
}

// ProfessionalDetails represents the professional profile attached to a user.
type ProfessionalDetails struct {
	UserID            uuid.UUID
	Designation       string
	BusinessUnit      string
	Department        string
	WorkStation       string
	ReportingTo       string
	EmployeeID        string
	EmailProfessional string
	DateOfJoining     string
	Degree            string
	Institution       string
	Year              string
	Percentage        string
}

// IUserTable defines the interface for user storage operations.
// Find methods return (nil, nil) when no row matches.
type IUserTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error)
	Update(ctx context.Context, user *User) (bool, error)
}

// IProfessionalDetailsTable defines the interface for professional detail
// storage operations.
type IProfessionalDetailsTable interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*ProfessionalDetails, error)
	Insert(ctx context.Context, userID uuid.UUID) error
	Update(ctx context.Context, details *ProfessionalDetails) (bool, error)
}
