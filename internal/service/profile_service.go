package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/user"
)

// ProfileService serves and updates merged personal + professional profiles.
type ProfileService struct {
	storage *storage.Storage
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store *storage.Storage) *ProfileService {
	return &ProfileService{storage: store}
}

// GetProfile returns the merged profile for a user. A missing professional
// row merges in as empty work details rather than an error.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	row, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrUserNotFound
	}

	details, err := s.storage.ProfessionalDetails.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		UserID:   row.ID,
		Personal: personalFromStorage(row),
	}
	if details != nil {
		profile.Work = workFromStorage(details)
	}
	return profile, nil
}

// UpdateProfile writes both halves of a profile. Email and password are not
// touched here; those move through the auth endpoints.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, personal PersonalDetails, work WorkDetails) error {
	row, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrUserNotFound
	}

	row.Name = personal.Name
	row.DateOfBirth = personal.DateOfBirth
	row.Gender = personal.Gender
	row.MaritalStatus = personal.MaritalStatus
	row.BloodGroup = personal.BloodGroup
	row.PhysicallyChallenged = personal.PhysicallyChallenged
	row.Phone = personal.Phone
	row.PhoneSecondary = personal.PhoneSecondary
	row.Address1 = personal.Address1
	row.Address2 = personal.Address2
	row.City = personal.City
	row.State = personal.State
	row.ZipCode = personal.ZipCode
	row.Country = personal.Country
	row.ProfilePhoto = personal.ProfilePhoto

	if _, err := s.storage.Users.Update(ctx, row); err != nil {
		return err
	}

	details, err := s.storage.ProfessionalDetails.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if details == nil {
		if err := s.storage.ProfessionalDetails.Insert(ctx, userID); err != nil {
			return err
		}
		details = &user.ProfessionalDetails{UserID: userID}
	}

	details.Designation = work.Designation
	details.BusinessUnit = work.BusinessUnit
	details.Department = work.Department
	details.WorkStation = work.WorkStation
	details.ReportingTo = work.ReportingTo
	details.EmployeeID = work.EmployeeID
	details.EmailProfessional = work.EmailProfessional
	details.DateOfJoining = work.DateOfJoining
	details.Degree = work.Degree
	details.Institution = work.Institution
	details.Year = work.Year
	details.Percentage = work.Percentage

	_, err = s.storage.ProfessionalDetails.Update(ctx, details)
	return err
}

func personalFromStorage(row *user.User) PersonalDetails {
	return PersonalDetails{
		Name:                 row.Name,
		Email:                row.Email,
		DateOfBirth:          row.DateOfBirth,
		Gender:               row.Gender,
		MaritalStatus:        row.MaritalStatus,
		BloodGroup:           row.BloodGroup,
		PhysicallyChallenged: row.PhysicallyChallenged,
		Phone:                row.Phone,
		PhoneSecondary:       row.PhoneSecondary,
		Address1:             row.Address1,
		Address2:             row.Address2,
		City:                 row.City,
		State:                row.State,
		ZipCode:              row.ZipCode,
		Country:              row.Country,
		ProfilePhoto:         row.ProfilePhoto,
	}
}

func workFromStorage(details *user.ProfessionalDetails) WorkDetails {
	return WorkDetails{
		Designation:       details.Designation,
		BusinessUnit:      details.BusinessUnit,
		Department:        details.Department,
		WorkStation:       details.WorkStation,
		ReportingTo:       details.ReportingTo,
		EmployeeID:        details.EmployeeID,
		EmailProfessional: details.EmailProfessional,
		DateOfJoining:     details.DateOfJoining,
		Degree:            details.Degree,
		Institution:       details.Institution,
		Year:              details.Year,
		Percentage:        details.Percentage,
	}
}
