// Package auth exposes signup, login and password-recovery endpoints.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/service"
)

// authService is the slice of AuthService the handlers need.
type authService interface {
	Signup(ctx context.Context, signup service.Signup) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (*service.Session, error)
	ForgotPassword(ctx context.Context, email string) (bool, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
}

// Handler handles the /v1/auth endpoints.
type Handler struct {
	Auth authService
}

// NewHandler creates a new auth Handler.
func NewHandler(svc authService) *Handler {
	return &Handler{Auth: svc}
}

// Register registers the auth endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "signup",
		Method:      http.MethodPost,
		Path:        "/v1/auth/signup",
		Summary:     "Sign up",
		Description: "Registers a new user.",
		Tags:        []string{"Auth"},
	}, h.signup)
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Tags:        []string{"Auth"},
	}, h.login)
	huma.Register(api, huma.Operation{
		OperationID: "forgot-password",
		Method:      http.MethodPost,
		Path:        "/v1/auth/forgot-password",
		Summary:     "Forgot password",
		Description: "Reports whether an account exists for the email.",
		Tags:        []string{"Auth"},
	}, h.forgotPassword)
	huma.Register(api, huma.Operation{
		OperationID: "reset-password",
		Method:      http.MethodPost,
		Path:        "/v1/auth/reset-password",
		Summary:     "Reset password",
		Tags:        []string{"Auth"},
	}, h.resetPassword)
}

// SignupBody is the request body for signing up.
type SignupBody struct {
	Name                 string `json:"name" required:"true" doc:"Full name"`
	Email                string `json:"email" required:"true" format:"email" doc:"Email address"`
	Password             string `json:"password" required:"true" minLength:"8" doc:"Password"`
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

// SignupInput is the Huma input for signing up.
type SignupInput struct {
	Body SignupBody
}

// SignupOutput is the Huma output for signing up.
type SignupOutput struct {
	Status int
	Body   struct {
		UserID string `json:"userID" doc:"New user UUID"`
	}
}

func (h *Handler) signup(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
	id, err := h.Auth.Signup(ctx, service.Signup{
		Name:                 input.Body.Name,
		Email:                input.Body.Email,
		Password:             input.Body.Password,
		DateOfBirth:          input.Body.DateOfBirth,
		Gender:               input.Body.Gender,
		MaritalStatus:        input.Body.MaritalStatus,
		BloodGroup:           input.Body.BloodGroup,
		PhysicallyChallenged: input.Body.PhysicallyChallenged,
		Phone:                input.Body.Phone,
		PhoneSecondary:       input.Body.PhoneSecondary,
		Address1:             input.Body.Address1,
		Address2:             input.Body.Address2,
		City:                 input.Body.City,
		State:                input.Body.State,
		ZipCode:              input.Body.ZipCode,
		Country:              input.Body.Country,
		ProfilePhoto:         input.Body.ProfilePhoto,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return nil, huma.Error409Conflict("email already registered")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to sign up", err)
	}

	out := &SignupOutput{Status: http.StatusCreated}
	out.Body.UserID = id.String()
	return out, nil
}

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" format:"email" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	Body struct {
		UserID string `json:"userID" doc:"User UUID"`
		Name   string `json:"name" doc:"Full name"`
		Email  string `json:"email" doc:"Email address"`
	}
}

func (h *Handler) login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	session, err := h.Auth.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("invalid email or password")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to log in", err)
	}

	out := &LoginOutput{}
	out.Body.UserID = session.UserID.String()
	out.Body.Name = session.Name
	out.Body.Email = session.Email
	return out, nil
}

// ForgotPasswordInput is the Huma input for the forgot-password endpoint.
type ForgotPasswordInput struct {
	Body struct {
		Email string `json:"email" required:"true" format:"email" doc:"Email address"`
	}
}

// ForgotPasswordOutput is the Huma output for the forgot-password endpoint.
type ForgotPasswordOutput struct {
	Body struct {
		Exists bool `json:"exists" doc:"Whether an account exists for the email"`
	}
}

func (h *Handler) forgotPassword(ctx context.Context, input *ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	exists, err := h.Auth.ForgotPassword(ctx, input.Body.Email)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to look up account", err)
	}

	out := &ForgotPasswordOutput{}
	out.Body.Exists = exists
	return out, nil
}

// ResetPasswordInput is the Huma input for the reset-password endpoint.
type ResetPasswordInput struct {
	Body struct {
		Email       string `json:"email" required:"true" format:"email" doc:"Email address"`
		NewPassword string `json:"newPassword" required:"true" minLength:"8" doc:"Replacement password"`
	}
}

// ResetPasswordOutput is the Huma output for the reset-password endpoint.
type ResetPasswordOutput struct {
	Status int
}

func (h *Handler) resetPassword(ctx context.Context, input *ResetPasswordInput) (*ResetPasswordOutput, error) {
	err := h.Auth.ResetPassword(ctx, input.Body.Email, input.Body.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return nil, huma.Error404NotFound("no account for that email")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to reset password", err)
	}
	return &ResetPasswordOutput{Status: http.StatusNoContent}, nil
}
