package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/operator/actions"
	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/vault"
	"github.com/keller-networks/pms-server/internal/vaultcipher"
)

// Vault represents a vault in the service layer.
type Vault struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VaultCreate is the input for creating a vault.
type VaultCreate struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Category    string
}

// VaultUpdate is a partial edit; nil fields keep their current value.
type VaultUpdate struct {
	Name        *string
	Description *string
	Category    *string
}

// VaultItem represents a vault item with its password decrypted. Items whose
// stored envelope cannot be decrypted come back with an empty password.
type VaultItem struct {
	ID        uuid.UUID
	VaultID   uuid.UUID
	Name      string
	Link      string
	Username  string
	Password  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VaultItemCreate is the input for creating a vault item. Password is
// plaintext here; only the cipher envelope reaches storage.
type VaultItemCreate struct {
	VaultID  uuid.UUID
	Name     string
	Link     string
	Username string
	Password string
	Notes    string
}

// VaultItemUpdate is a partial edit; nil fields keep their current value.
type VaultItemUpdate struct {
	Name     *string
	Link     *string
	Username *string
	Password *string
	Notes    *string
}

// VaultService handles vaults and their encrypted items. Passwords pass
// through the cipher on every write and read; plaintext never touches
// storage.
type VaultService struct {
	storage   *storage.Storage
	delegator Delegator
	cipher    *vaultcipher.Cipher
}

// NewVaultService creates a new VaultService.
func NewVaultService(store *storage.Storage, delegator Delegator, cipher *vaultcipher.Cipher) *VaultService {
	return &VaultService{storage: store, delegator: delegator, cipher: cipher}
}

// CreateVault creates a vault.
func (s *VaultService) CreateVault(ctx context.Context, create VaultCreate) (uuid.UUID, error) {
	return s.storage.Vaults.Insert(ctx, &vault.VaultCreate{
		UserID:      create.UserID,
		Name:        create.Name,
		Description: create.Description,
		Category:    create.Category,
	})
}

// GetVault retrieves one vault.
func (s *VaultService) GetVault(ctx context.Context, id uuid.UUID) (*Vault, error) {
	row, err := s.storage.Vaults.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrVaultNotFound
	}
	converted := vaultFromStorage(row)
	return &converted, nil
}

// ListVaults returns all of a user's vaults.
func (s *VaultService) ListVaults(ctx context.Context, userID uuid.UUID) ([]Vault, error) {
	rows, err := s.storage.Vaults.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	vaults := make([]Vault, len(rows))
	for i, row := range rows {
		vaults[i] = vaultFromStorage(row)
	}
	return vaults, nil
}

// UpdateVault applies a partial edit to a vault's metadata.
func (s *VaultService) UpdateVault(ctx context.Context, id uuid.UUID, update VaultUpdate) error {
	row, err := s.storage.Vaults.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrVaultNotFound
	}

	if update.Name != nil {
		row.Name = *update.Name
	}
	if update.Description != nil {
		row.Description = *update.Description
	}
	if update.Category != nil {
		row.Category = *update.Category
	}

	updated, err := s.storage.Vaults.Update(ctx, row)
	if err != nil {
		return err
	}
	if !updated {
		return ErrVaultNotFound
	}
	return nil
}

// DeleteVault removes a vault and all of its items in one transaction.
func (s *VaultService) DeleteVault(ctx context.Context, id uuid.UUID) error {
	err := s.delegator.Process(ctx, &actions.DeleteVault{VaultID: id})
	if err == actions.ErrVaultNotFound {
		return ErrVaultNotFound
	}
	return err
}

// CreateItem encrypts the password and stores the item.
func (s *VaultService) CreateItem(ctx context.Context, create VaultItemCreate) (uuid.UUID, error) {
	owner, err := s.storage.Vaults.FindByID(ctx, create.VaultID)
	if err != nil {
		return uuid.Nil, err
	}
	if owner == nil {
		return uuid.Nil, ErrVaultNotFound
	}

	envelope, err := s.cipher.Encrypt(create.Password)
	if err != nil {
		return uuid.Nil, err
	}

	return s.storage.VaultItems.Insert(ctx, &vault.ItemCreate{
		VaultID:           create.VaultID,
		Name:              create.Name,
		Link:              create.Link,
		Username:          create.Username,
		EncryptedPassword: envelope,
		Notes:             create.Notes,
	})
}

// ListItems returns a vault's items with passwords decrypted.
func (s *VaultService) ListItems(ctx context.Context, vaultID uuid.UUID) ([]VaultItem, error) {
	owner, err := s.storage.Vaults.FindByID(ctx, vaultID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrVaultNotFound
	}

	rows, err := s.storage.VaultItems.ListByVault(ctx, vaultID)
	if err != nil {
		return nil, err
	}

	items := make([]VaultItem, len(rows))
	for i, row := range rows {
		items[i] = s.itemFromStorage(row)
	}
	return items, nil
}

// UpdateItem applies a partial edit, re-encrypting the password when it
// changes. An explicit empty password clears the stored envelope.
func (s *VaultService) UpdateItem(ctx context.Context, id uuid.UUID, update VaultItemUpdate) error {
	row, err := s.storage.VaultItems.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return ErrItemNotFound
	}

	if update.Name != nil {
		row.Name = *update.Name
	}
	if update.Link != nil {
		row.Link = *update.Link
	}
	if update.Username != nil {
		row.Username = *update.Username
	}
	if update.Password != nil {
		envelope, err := s.cipher.Encrypt(*update.Password)
		if err != nil {
			return err
		}
		row.EncryptedPassword = envelope
	}
	if update.Notes != nil {
		row.Notes = *update.Notes
	}

	updated, err := s.storage.VaultItems.Update(ctx, row)
	if err != nil {
		return err
	}
	if !updated {
		return ErrItemNotFound
	}
	return nil
}

// DeleteItem removes a vault item.
func (s *VaultService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.storage.VaultItems.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}

func vaultFromStorage(row *vault.Vault) Vault {
	return Vault{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Description: row.Description,
		Category:    row.Category,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// itemFromStorage decrypts the stored envelope. A corrupt envelope serves an
// empty password rather than failing the whole read.
func (s *VaultService) itemFromStorage(row *vault.Item) VaultItem {
	password, err := s.cipher.Decrypt(row.EncryptedPassword)
	if errors.Is(err, vaultcipher.ErrDecryption) {
		password = ""
	}

	return VaultItem{
		ID:        row.ID,
		VaultID:   row.VaultID,
		Name:      row.Name,
		Link:      row.Link,
		Username:  row.Username,
		Password:  password,
		Notes:     row.Notes,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
