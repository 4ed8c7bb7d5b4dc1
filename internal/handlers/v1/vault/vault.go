// Package vault exposes the vault and vault item endpoints.
package vault

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/service"
)

// vaultService is the slice of VaultService the handlers need.
type vaultService interface {
	CreateVault(ctx context.Context, create service.VaultCreate) (uuid.UUID, error)
	GetVault(ctx context.Context, id uuid.UUID) (*service.Vault, error)
	ListVaults(ctx context.Context, userID uuid.UUID) ([]service.Vault, error)
	UpdateVault(ctx context.Context, id uuid.UUID, update service.VaultUpdate) error
	DeleteVault(ctx context.Context, id uuid.UUID) error
	CreateItem(ctx context.Context, create service.VaultItemCreate) (uuid.UUID, error)
	ListItems(ctx context.Context, vaultID uuid.UUID) ([]service.VaultItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, update service.VaultItemUpdate) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

// Handler handles the /v1/vaults endpoints.
type Handler struct {
	Vaults vaultService
}

// NewHandler creates a new vault Handler.
func NewHandler(svc vaultService) *Handler {
	return &Handler{Vaults: svc}
}

// Register registers the vault endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-vault",
		Method:      http.MethodPost,
		Path:        "/v1/vaults",
		Summary:     "Create vault",
		Tags:        []string{"Vaults"},
	}, h.create)
	huma.Register(api, huma.Operation{
		OperationID: "list-vaults",
		Method:      http.MethodGet,
		Path:        "/v1/vaults/user/{userID}",
		Summary:     "List vaults",
		Tags:        []string{"Vaults"},
	}, h.list)
	huma.Register(api, huma.Operation{
		OperationID: "update-vault",
		Method:      http.MethodPatch,
		Path:        "/v1/vaults/{vaultID}",
		Summary:     "Update vault",
		Tags:        []string{"Vaults"},
	}, h.update)
	huma.Register(api, huma.Operation{
		OperationID: "delete-vault",
		Method:      http.MethodDelete,
		Path:        "/v1/vaults/{vaultID}",
		Summary:     "Delete vault",
		Description: "Deletes a vault and every item inside it.",
		Tags:        []string{"Vaults"},
	}, h.delete)
}

// Vault is the API response model for a vault.
type Vault struct {
	ID          string `json:"id" doc:"Vault UUID"`
	UserID      string `json:"userID" doc:"Owner UUID"`
	Name        string `json:"name" doc:"Vault name"`
	Description string `json:"description,omitempty" doc:"Vault description"`
	Category    string `json:"category,omitempty" doc:"Vault category"`
}

func vaultToAPI(v service.Vault) Vault {
	return Vault{
		ID:          v.ID.String(),
		UserID:      v.UserID.String(),
		Name:        v.Name,
		Description: v.Description,
		Category:    v.Category,
	}
}

// CreateVaultInput is the Huma input for creating a vault.
type CreateVaultInput struct {
	Body struct {
		UserID      string `json:"userID" required:"true" doc:"Owner UUID"`
		Name        string `json:"name" required:"true" doc:"Vault name"`
		Description string `json:"description,omitempty" doc:"Vault description"`
		Category    string `json:"category,omitempty" doc:"Vault category"`
	}
}

// CreateVaultOutput is the Huma output for creating a vault.
type CreateVaultOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"New vault UUID"`
	}
}

func (h *Handler) create(ctx context.Context, input *CreateVaultInput) (*CreateVaultOutput, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	id, err := h.Vaults.CreateVault(ctx, service.VaultCreate{
		UserID:      userID,
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Category:    input.Body.Category,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create vault", err)
	}

	out := &CreateVaultOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}

// ListVaultsInput is the Huma input for listing vaults.
type ListVaultsInput struct {
	UserID string `path:"userID" doc:"Owner UUID"`
}

// ListVaultsOutput is the Huma output for listing vaults.
type ListVaultsOutput struct {
	Body struct {
		Vaults []Vault `json:"vaults" doc:"The user's vaults"`
	}
}

func (h *Handler) list(ctx context.Context, input *ListVaultsInput) (*ListVaultsOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	vaults, err := h.Vaults.ListVaults(ctx, userID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list vaults", err)
	}

	out := &ListVaultsOutput{}
	out.Body.Vaults = make([]Vault, len(vaults))
	for i, v := range vaults {
		out.Body.Vaults[i] = vaultToAPI(v)
	}
	return out, nil
}

// UpdateVaultInput is the Huma input for updating a vault. Absent fields keep
// their current value.
type UpdateVaultInput struct {
	VaultID string `path:"vaultID" doc:"Vault UUID"`
	Body    struct {
		Name        *string `json:"name,omitempty" doc:"Vault name"`
		Description *string `json:"description,omitempty" doc:"Vault description"`
		Category    *string `json:"category,omitempty" doc:"Vault category"`
	}
}

// UpdateVaultOutput is the Huma output for updating a vault.
type UpdateVaultOutput struct {
	Status int
}

func (h *Handler) update(ctx context.Context, input *UpdateVaultInput) (*UpdateVaultOutput, error) {
	vaultID, err := uuid.FromString(input.VaultID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid vaultID", err)
	}

	err = h.Vaults.UpdateVault(ctx, vaultID, service.VaultUpdate{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Category:    input.Body.Category,
	})
	if err != nil {
		if errors.Is(err, service.ErrVaultNotFound) {
			return nil, huma.Error404NotFound("vault not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update vault", err)
	}
	return &UpdateVaultOutput{Status: http.StatusNoContent}, nil
}

// DeleteVaultInput is the Huma input for deleting a vault.
type DeleteVaultInput struct {
	VaultID string `path:"vaultID" doc:"Vault UUID"`
}

// DeleteVaultOutput is the Huma output for deleting a vault.
type DeleteVaultOutput struct {
	Status int
}

func (h *Handler) delete(ctx context.Context, input *DeleteVaultInput) (*DeleteVaultOutput, error) {
	vaultID, err := uuid.FromString(input.VaultID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid vaultID", err)
	}

	if err := h.Vaults.DeleteVault(ctx, vaultID); err != nil {
		if errors.Is(err, service.ErrVaultNotFound) {
			return nil, huma.Error404NotFound("vault not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete vault", err)
	}
	return &DeleteVaultOutput{Status: http.StatusNoContent}, nil
}
