package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage"
)

// DeleteVault removes a vault and every item inside it in one transaction.
type DeleteVault struct {
	VaultID uuid.UUID

	IAction
}

func (d *DeleteVault) Perform(ctx context.Context, writer *storage.Writer) error {
	vault, err := writer.Vaults.FindByID(ctx, d.VaultID)
	if err != nil {
		return err
	}
	if vault == nil {
		return ErrVaultNotFound
	}

	if _, err := writer.VaultItems.DeleteByVault(ctx, d.VaultID); err != nil {
		return err
	}

	deleted, err := writer.Vaults.Delete(ctx, d.VaultID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrVaultNotFound
	}
	return nil
}
