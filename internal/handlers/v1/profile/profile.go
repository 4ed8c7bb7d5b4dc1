// Package profile serves the merged personal + professional profile.
package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/service"
)

// profileService is the slice of ProfileService the handlers need.
type profileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*service.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, personal service.PersonalDetails, work service.WorkDetails) error
}

// Handler handles the /v1/profile endpoints.
type Handler struct {
	Profile profileService
}

// NewHandler creates a new profile Handler.
func NewHandler(svc profileService) *Handler {
	return &Handler{Profile: svc}
}

// Register registers the profile endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/profile/{userID}",
		Summary:     "Get profile",
		Tags:        []string{"Profile"},
	}, h.get)
	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/v1/profile/{userID}",
		Summary:     "Update profile",
		Tags:        []string{"Profile"},
	}, h.update)
}

// PersonalDetails mirrors the personal half of a profile in request and
// response bodies.
type PersonalDetails struct {
	Name                 string `json:"name" doc:"Full name"`
	Email                string `json:"email,omitempty" doc:"Email address, read-only"`
	DateOfBirth          string `json:"dateOfBirth,omitempty" doc:"Date of birth"`
	Gender               string `json:"gender,omitempty" doc:"Gender"`
	MaritalStatus        string `json:"maritalStatus,omitempty" doc:"Marital status"`
	BloodGroup           string `json:"bloodGroup,omitempty" doc:"Blood group"`
	PhysicallyChallenged string `json:"physicallyChallenged,omitempty" doc:"Physically challenged"`
	Phone                string `json:"phone,omitempty" doc:"Primary phone"`
	PhoneSecondary       string `json:"phoneSecondary,omitempty" doc:"Secondary phone"`
	Address1             string `json:"address1,omitempty" doc:"Address line 1"`
	Address2             string `json:"address2,omitempty" doc:"Address line 2"`
	City                 string `json:"city,omitempty" doc:"City"`
	State                string `json:"state,omitempty" doc:"State"`
	ZipCode              string `json:"zipCode,omitempty" doc:"Zip code"`
	Country              string `json:"country,omitempty" doc:"Country"`
	ProfilePhoto         string `json:"profilePhoto,omitempty" doc:"Profile photo URL"`
}

// WorkDetails mirrors the professional half of a profile.
type WorkDetails struct {
	Designation       string `json:"designation,omitempty" doc:"Designation"`
	BusinessUnit      string `json:"businessUnit,omitempty" doc:"Business unit"`
	Department        string `json:"department,omitempty" doc:"Department"`
	WorkStation       string `json:"workStation,omitempty" doc:"Work station"`
	ReportingTo       string `json:"reportingTo,omitempty" doc:"Reporting manager"`
	EmployeeID        string `json:"employeeID,omitempty" doc:"Employee ID"`
	EmailProfessional string `json:"emailProfessional,omitempty" doc:"Work email"`
	DateOfJoining     string `json:"dateOfJoining,omitempty" doc:"Date of joining"`
	Degree            string `json:"degree,omitempty" doc:"Highest degree"`
	Institution       string `json:"institution,omitempty" doc:"Institution"`
	Year              string `json:"year,omitempty" doc:"Graduation year"`
	Percentage        string `json:"percentage,omitempty" doc:"Grade or percentage"`
}

// GetProfileInput is the Huma input for fetching a profile.
type GetProfileInput struct {
	UserID string `path:"userID" doc:"User UUID"`
}

// GetProfileOutput is the Huma output for fetching a profile.
type GetProfileOutput struct {
	Body struct {
		UserID   string          `json:"userID" doc:"User UUID"`
		Personal PersonalDetails `json:"personal" doc:"Personal details"`
		Work     WorkDetails     `json:"work" doc:"Professional details"`
	}
}

func (h *Handler) get(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	p, err := h.Profile.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return nil, huma.Error404NotFound("user not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch profile", err)
	}

	out := &GetProfileOutput{}
	out.Body.UserID = p.UserID.String()
	out.Body.Personal = PersonalDetails{
		Name:                 p.Personal.Name,
		Email:                p.Personal.Email,
		DateOfBirth:          p.Personal.DateOfBirth,
		Gender:               p.Personal.Gender,
		MaritalStatus:        p.Personal.MaritalStatus,
		BloodGroup:           p.Personal.BloodGroup,
		PhysicallyChallenged: p.Personal.PhysicallyChallenged,
		Phone:                p.Personal.Phone,
		PhoneSecondary:       p.Personal.PhoneSecondary,
		Address1:             p.Personal.Address1,
		Address2:             p.Personal.Address2,
		City:                 p.Personal.City,
		State:                p.Personal.State,
		ZipCode:              p.Personal.ZipCode,
		Country:              p.Personal.Country,
		ProfilePhoto:         p.Personal.ProfilePhoto,
	}
	out.Body.Work = WorkDetails{
		Designation:       p.Work.Designation,
		BusinessUnit:      p.Work.BusinessUnit,
		Department:        p.Work.Department,
		WorkStation:       p.Work.WorkStation,
		ReportingTo:       p.Work.ReportingTo,
		EmployeeID:        p.Work.EmployeeID,
		EmailProfessional: p.Work.EmailProfessional,
		DateOfJoining:     p.Work.DateOfJoining,
		Degree:            p.Work.Degree,
		Institution:       p.Work.Institution,
		Year:              p.Work.Year,
		Percentage:        p.Work.Percentage,
	}
	return out, nil
}

// UpdateProfileInput is the Huma input for updating a profile.
type UpdateProfileInput struct {
	UserID string `path:"userID" doc:"User UUID"`
	Body   struct {
		Personal PersonalDetails `json:"personal" doc:"Personal details"`
		Work     WorkDetails     `json:"work" doc:"Professional details"`
	}
}

// UpdateProfileOutput is the Huma output for updating a profile.
type UpdateProfileOutput struct {
	Status int
}

func (h *Handler) update(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	personal := service.PersonalDetails{
		Name:                 input.Body.Personal.Name,
		DateOfBirth:          input.Body.Personal.DateOfBirth,
		Gender:               input.Body.Personal.Gender,
		MaritalStatus:        input.Body.Personal.MaritalStatus,
		BloodGroup:           input.Body.Personal.BloodGroup,
		PhysicallyChallenged: input.Body.Personal.PhysicallyChallenged,
		Phone:                input.Body.Personal.Phone,
		PhoneSecondary:       input.Body.Personal.PhoneSecondary,
		Address1:             input.Body.Personal.Address1,
		Address2:             input.Body.Personal.Address2,
		City:                 input.Body.Personal.City,
		State:                input.Body.Personal.State,
		ZipCode:              input.Body.Personal.ZipCode,
		Country:              input.Body.Personal.Country,
		ProfilePhoto:         input.Body.Personal.ProfilePhoto,
	}
	work := service.WorkDetails{
		Designation:       input.Body.Work.Designation,
		BusinessUnit:      input.Body.Work.BusinessUnit,
		Department:        input.Body.Work.Department,
		WorkStation:       input.Body.Work.WorkStation,
		ReportingTo:       input.Body.Work.ReportingTo,
		EmployeeID:        input.Body.Work.EmployeeID,
		EmailProfessional: input.Body.Work.EmailProfessional,
		DateOfJoining:     input.Body.Work.DateOfJoining,
		Degree:            input.Body.Work.Degree,
		Institution:       input.Body.Work.Institution,
		Year:              input.Body.Work.Year,
		Percentage:        input.Body.Work.Percentage,
	}

	if err := h.Profile.UpdateProfile(ctx, userID, personal, work); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return nil, huma.Error404NotFound("user not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update profile", err)
	}
	return &UpdateProfileOutput{Status: http.StatusNoContent}, nil
}
