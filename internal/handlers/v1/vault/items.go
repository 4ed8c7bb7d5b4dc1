package vault

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/service"
)

// RegisterItems registers the vault item endpoints with the Huma API.
func (h *Handler) RegisterItems(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-vault-item",
		Method:      http.MethodPost,
		Path:        "/v1/vaults/{vaultID}/items",
		Summary:     "Create vault item",
		Description: "Stores a credential; the password is encrypted before it reaches the database.",
		Tags:        []string{"Vaults"},
	}, h.createItem)
	huma.Register(api, huma.Operation{
		OperationID: "list-vault-items",
		Method:      http.MethodGet,
		Path:        "/v1/vaults/{vaultID}/items",
		Summary:     "List vault items",
		Description: "Returns the vault's items with passwords decrypted.",
		Tags:        []string{"Vaults"},
	}, h.listItems)
	huma.Register(api, huma.Operation{
		OperationID: "update-vault-item",
		Method:      http.MethodPatch,
		Path:        "/v1/vaults/items/{itemID}",
		Summary:     "Update vault item",
		Tags:        []string{"Vaults"},
	}, h.updateItem)
	huma.Register(api, huma.Operation{
		OperationID: "delete-vault-item",
		Method:      http.MethodDelete,
		Path:        "/v1/vaults/items/{itemID}",
		Summary:     "Delete vault item",
		Tags:        []string{"Vaults"},
	}, h.deleteItem)
}

// Item is the API response model for a vault item. Password is plaintext in
// responses; storage only ever sees the cipher envelope.
type Item struct {
	ID       string `json:"id" doc:"Item UUID"`
	VaultID  string `json:"vaultID" doc:"Vault UUID"`
	Name     string `json:"name" doc:"Credential name"`
	Link     string `json:"link,omitempty" doc:"Associated URL"`
	Username string `json:"username,omitempty" doc:"Username"`
	Password string `json:"password,omitempty" doc:"Decrypted password, empty when the stored envelope is corrupt"`
	Notes    string `json:"notes,omitempty" doc:"Free-form notes"`
}

// CreateItemInput is the Huma input for creating a vault item.
type CreateItemInput struct {
	VaultID string `path:"vaultID" doc:"Vault UUID"`
	Body    struct {
		Name     string `json:"name" required:"true" doc:"Credential name"`
		Link     string `json:"link,omitempty" doc:"Associated URL"`
		Username string `json:"username,omitempty" doc:"Username"`
		Password string `json:"password,omitempty" doc:"Plaintext password, encrypted at rest"`
		Notes    string `json:"notes,omitempty" doc:"Free-form notes"`
	}
}

// CreateItemOutput is the Huma output for creating a vault item.
type CreateItemOutput struct {
	Status int
	Body   struct {
		ID string `json:"id" doc:"New item UUID"`
	}
}

func (h *Handler) createItem(ctx context.Context, input *CreateItemInput) (*CreateItemOutput, error) {
	vaultID, err := uuid.FromString(input.VaultID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid vaultID", err)
	}

	id, err := h.Vaults.CreateItem(ctx, service.VaultItemCreate{
		VaultID:  vaultID,
		Name:     input.Body.Name,
		Link:     input.Body.Link,
		Username: input.Body.Username,
		Password: input.Body.Password,
		Notes:    input.Body.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrVaultNotFound) {
			return nil, huma.Error404NotFound("vault not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create vault item", err)
	}

	out := &CreateItemOutput{Status: http.StatusCreated}
	out.Body.ID = id.String()
	return out, nil
}

// ListItemsInput is the Huma input for listing vault items.
type ListItemsInput struct {
	VaultID string `path:"vaultID" doc:"Vault UUID"`
}

// ListItemsOutput is the Huma output for listing vault items.
type ListItemsOutput struct {
	Body struct {
		Items []Item `json:"items" doc:"The vault's items with passwords decrypted"`
	}
}

func (h *Handler) listItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	vaultID, err := uuid.FromString(input.VaultID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid vaultID", err)
	}

	items, err := h.Vaults.ListItems(ctx, vaultID)
	if err != nil {
		if errors.Is(err, service.ErrVaultNotFound) {
			return nil, huma.Error404NotFound("vault not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list vault items", err)
	}

	out := &ListItemsOutput{}
	out.Body.Items = make([]Item, len(items))
	for i, item := range items {
		out.Body.Items[i] = Item{
			ID:       item.ID.String(),
			VaultID:  item.VaultID.String(),
			Name:     item.Name,
			Link:     item.Link,
			Username: item.Username,
			Password: item.Password,
			Notes:    item.Notes,
		}
	}
	return out, nil
}

// UpdateItemInput is the Huma input for updating a vault item. Absent fields
// keep their current value; an explicit empty password clears the stored one.
type UpdateItemInput struct {
	ItemID string `path:"itemID" doc:"Item UUID"`
	Body   struct {
		Name     *string `json:"name,omitempty" doc:"Credential name"`
		Link     *string `json:"link,omitempty" doc:"Associated URL"`
		Username *string `json:"username,omitempty" doc:"Username"`
		Password *string `json:"password,omitempty" doc:"Plaintext password, encrypted at rest"`
		Notes    *string `json:"notes,omitempty" doc:"Free-form notes"`
	}
}

// UpdateItemOutput is the Huma output for updating a vault item.
type UpdateItemOutput struct {
	Status int
}

func (h *Handler) updateItem(ctx context.Context, input *UpdateItemInput) (*UpdateItemOutput, error) {
	itemID, err := uuid.FromString(input.ItemID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid itemID", err)
	}

	err = h.Vaults.UpdateItem(ctx, itemID, service.VaultItemUpdate{
		Name:     input.Body.Name,
		Link:     input.Body.Link,
		Username: input.Body.Username,
		Password: input.Body.Password,
		Notes:    input.Body.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return nil, huma.Error404NotFound("vault item not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update vault item", err)
	}
	return &UpdateItemOutput{Status: http.StatusNoContent}, nil
}

// DeleteItemInput is the Huma input for deleting a vault item.
type DeleteItemInput struct {
	ItemID string `path:"itemID" doc:"Item UUID"`
}

// DeleteItemOutput is the Huma output for deleting a vault item.
type DeleteItemOutput struct {
	Status int
}

func (h *Handler) deleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error) {
	itemID, err := uuid.FromString(input.ItemID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid itemID", err)
	}

	if err := h.Vaults.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			return nil, huma.Error404NotFound("vault item not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete vault item", err)
	}
	return &DeleteItemOutput{Status: http.StatusNoContent}, nil
}
