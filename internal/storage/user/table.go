package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage/sqlexec"
)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec sqlexec.Queryer
}

// Ensure UsersTable implements IUserTable at compile time.
var _ IUserTable = (*UsersTable)(nil)

// NewUsersTable creates a UsersTable over the given executor.
func NewUsersTable(exec sqlexec.Queryer) *UsersTable {
	return &UsersTable{exec: exec}
}

const userColumns = `id, name, email, password_hash, date_of_birth, gender, marital_status,
blood_group, physically_challenged, phone, phone_secondary, address1, address2,
city, state, zip_code, country, profile_photo, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.DateOfBirth, &u.Gender,
		&u.MaritalStatus, &u.BloodGroup, &u.PhysicallyChallenged, &u.Phone,
		&u.PhoneSecondary, &u.Address1, &u.Address2, &u.City, &u.State,
		&u.ZipCode, &u.Country, &u.ProfilePhoto, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (t *UsersTable) findOne(ctx context.Context, query string, args ...any) (*User, error) {
	u, err := scanUser(t.exec.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return t.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail retrieves a user by unique email.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	return t.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// Insert creates a new user and returns its generated ID.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash, date_of_birth, gender, marital_status,
		                    blood_group, physically_challenged, phone, phone_secondary,
		                    address1, address2, city, state, zip_code, country, profile_photo)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING id`,
		create.Name, create.Email, create.PasswordHash, create.DateOfBirth, create.Gender,
		create.MaritalStatus, create.BloodGroup, create.PhysicallyChallenged, create.Phone,
		create.PhoneSecondary, create.Address1, create.Address2, create.City, create.State,
		create.ZipCode, create.Country, create.ProfilePhoto,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update writes all mutable columns of a user. Returns false when no row matched.
func (t *UsersTable) Update(ctx context.Context, user *User) (bool, error) {
	result, err := t.exec.ExecContext(ctx,
		`UPDATE users
		 SET name = $2, email = $3, password_hash = $4, date_of_birth = $5, gender = $6,
		     marital_status = $7, blood_group = $8, physically_challenged = $9, phone = $10,
		     phone_secondary = $11, address1 = $12, address2 = $13, city = $14, state = $15,
		     zip_code = $16, country = $17, profile_photo = $18, updated_at = now()
		 WHERE id = $1`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.DateOfBirth, user.Gender,
		user.MaritalStatus, user.BloodGroup, user.PhysicallyChallenged, user.Phone,
		user.PhoneSecondary, user.Address1, user.Address2, user.City, user.State,
		user.ZipCode, user.Country, user.ProfilePhoto)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ProfessionalDetailsTable provides access to the professional_details table.
type ProfessionalDetailsTable struct {
	exec sqlexec.Queryer
}

// Ensure ProfessionalDetailsTable implements IProfessionalDetailsTable at compile time.
var _ IProfessionalDetailsTable = (*ProfessionalDetailsTable)(nil)

// NewProfessionalDetailsTable creates a ProfessionalDetailsTable over the given executor.
func NewProfessionalDetailsTable(exec sqlexec.Queryer) *ProfessionalDetailsTable {
	return &ProfessionalDetailsTable{exec: exec}
}

const professionalColumns = `user_id, designation, business_unit, department, work_station,
reporting_to, employee_id, email_professional, date_of_joining, degree, institution, year, percentage`

// FindByUserID retrieves a user's professional details, (nil, nil) when absent.
func (t *ProfessionalDetailsTable) FindByUserID(ctx context.Context, userID uuid.UUID) (*ProfessionalDetails, error) {
	var d ProfessionalDetails
	err := t.exec.QueryRowContext(ctx,
		`SELECT `+professionalColumns+` FROM professional_details WHERE user_id = $1`, userID,
	).Scan(
		&d.UserID, &d.Designation, &d.BusinessUnit, &d.Department, &d.WorkStation,
		&d.ReportingTo, &d.EmployeeID, &d.EmailProfessional, &d.DateOfJoining,
		&d.Degree, &d.Institution, &d.Year, &d.Percentage,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Insert creates an empty professional details row for a new user.
func (t *ProfessionalDetailsTable) Insert(ctx context.Context, userID uuid.UUID) error {
	_, err := t.exec.ExecContext(ctx,
		`INSERT INTO professional_details (user_id) VALUES ($1)`, userID)
	return err
}

// Update writes all mutable columns of a professional details row.
func (t *ProfessionalDetailsTable) Update(ctx context.Context, details *ProfessionalDetails) (bool, error) {
	result, err := t.exec.ExecContext(ctx,
		`UPDATE professional_details
		 SET designation = $2, business_unit = $3, department = $4, work_station = $5,
		     reporting_to = $6, employee_id = $7, email_professional = $8,
		     date_of_joining = $9, degree = $10, institution = $11, year = $12, percentage = $13
		 WHERE user_id = $1`,
		details.UserID, details.Designation, details.BusinessUnit, details.Department,
		details.WorkStation, details.ReportingTo, details.EmployeeID, details.EmailProfessional,
		details.DateOfJoining, details.Degree, details.Institution, details.Year, details.Percentage)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
