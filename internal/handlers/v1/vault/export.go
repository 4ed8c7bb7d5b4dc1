package vault

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/export"
	"github.com/keller-networks/pms-server/internal/service"
)

// ExportVaultInput is the Huma input for exporting a vault as CSV.
type ExportVaultInput struct {
	VaultID string `path:"vaultID" doc:"Vault UUID"`
}

// ExportVaultOutput is the Huma output for exporting a vault.
type ExportVaultOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// RegisterExport registers the vault export endpoint with the Huma API.
func (h *Handler) RegisterExport(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-vault",
		Method:      http.MethodGet,
		Path:        "/v1/vaults/{vaultID}/export",
		Summary:     "Export vault CSV",
		Description: "Builds a CSV of the vault's items with passwords decrypted.",
		Tags:        []string{"Vaults"},
	}, h.exportVault)
}

func (h *Handler) exportVault(ctx context.Context, input *ExportVaultInput) (*ExportVaultOutput, error) {
	vaultID, err := uuid.FromString(input.VaultID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid vaultID", err)
	}

	v, err := h.Vaults.GetVault(ctx, vaultID)
	if err != nil {
		if errors.Is(err, service.ErrVaultNotFound) {
			return nil, huma.Error404NotFound("vault not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to fetch vault", err)
	}

	items, err := h.Vaults.ListItems(ctx, vaultID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list vault items", err)
	}

	csvBytes, err := export.VaultCSV(*v, items)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build export", err)
	}

	return &ExportVaultOutput{
		ContentType: "text/csv",
		Body:        csvBytes,
	}, nil
}
