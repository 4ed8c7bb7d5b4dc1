package vault

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/storage/sqlexec"
)

// VaultsTable provides access to the vaults table.
type VaultsTable struct {
	exec sqlexec.Queryer
}

// Ensure VaultsTable implements IVaultTable at compile time.
var _ IVaultTable = (*VaultsTable)(nil)

// NewVaultsTable creates a VaultsTable over the given executor.
func NewVaultsTable(exec sqlexec.Queryer) *VaultsTable {
	return &VaultsTable{exec: exec}
}

const vaultColumns = `id, user_id, name, description, category, created_at, updated_at`

func scanVault(row interface{ Scan(...any) error }) (*Vault, error) {
	var v Vault
	err := row.Scan(&v.ID, &v.UserID, &v.Name, &v.Description, &v.Category, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FindByID retrieves a vault by primary key.
func (t *VaultsTable) FindByID(ctx context.Context, id uuid.UUID) (*Vault, error) {
	row, err := scanVault(t.exec.QueryRowContext(ctx,
		`SELECT `+vaultColumns+` FROM vaults WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// ListByUser returns all vaults for a user, newest first.
func (t *VaultsTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Vault, error) {
	rows, err := t.exec.QueryContext(ctx,
		`SELECT `+vaultColumns+` FROM vaults WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Vault
	for rows.Next() {
		v, err := scanVault(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, rows.Err()
}

// Insert creates a new vault and returns its generated ID.
func (t *VaultsTable) Insert(ctx context.Context, create *VaultCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRowContext(ctx,
		`INSERT INTO vaults (user_id, name, description, category)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		create.UserID, create.Name, create.Description, create.Category,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update writes all mutable columns of a vault. Returns false when no row matched.
func (t *VaultsTable) Update(ctx context.Context, vault *Vault) (bool, error) {
	result, err := t.exec.ExecContext(ctx,
		`UPDATE vaults SET name = $2, description = $3, category = $4, updated_at = now() WHERE id = $1`,
		vault.ID, vault.Name, vault.Description, vault.Category)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a vault. Returns false when no row matched.
func (t *VaultsTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM vaults WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// VaultItemsTable provides access to the vault_items table.
type VaultItemsTable struct {
	exec sqlexec.Queryer
}

// Ensure VaultItemsTable implements IVaultItemTable at compile time.
var _ IVaultItemTable = (*VaultItemsTable)(nil)

// NewVaultItemsTable creates a VaultItemsTable over the given executor.
func NewVaultItemsTable(exec sqlexec.Queryer) *VaultItemsTable {
	return &VaultItemsTable{exec: exec}
}

const itemColumns = `id, vault_id, name, link, username, encrypted_password, notes, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (*Item, error) {
	var item Item
	err := row.Scan(
		&item.ID, &item.VaultID, &item.Name, &item.Link, &item.Username,
		&item.EncryptedPassword, &item.Notes, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByID retrieves a vault item by primary key.
func (t *VaultItemsTable) FindByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	row, err := scanItem(t.exec.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM vault_items WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return row, err
}

// ListByVault returns all items in a vault, newest first.
func (t *VaultItemsTable) ListByVault(ctx context.Context, vaultID uuid.UUID) ([]*Item, error) {
	rows, err := t.exec.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM vault_items WHERE vault_id = $1 ORDER BY created_at DESC, id DESC`, vaultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

// Insert creates a new vault item and returns its generated ID.
func (t *VaultItemsTable) Insert(ctx context.Context, create *ItemCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRowContext(ctx,
		`INSERT INTO vault_items (vault_id, name, link, username, encrypted_password, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		create.VaultID, create.Name, create.Link, create.Username,
		create.EncryptedPassword, create.Notes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// Update writes all mutable columns of a vault item. Returns false when no
// row matched.
func (t *VaultItemsTable) Update(ctx context.Context, item *Item) (bool, error) {
	result, err := t.exec.ExecContext(ctx,
		`UPDATE vault_items
		 SET name = $2, link = $3, username = $4, encrypted_password = $5, notes = $6, updated_at = now()
		 WHERE id = $1`,
		item.ID, item.Name, item.Link, item.Username, item.EncryptedPassword, item.Notes)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes a vault item. Returns false when no row matched.
func (t *VaultItemsTable) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM vault_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteByVault removes every item in a vault.
func (t *VaultItemsTable) DeleteByVault(ctx context.Context, vaultID uuid.UUID) (int64, error) {
	result, err := t.exec.ExecContext(ctx, `DELETE FROM vault_items WHERE vault_id = $1`, vaultID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
