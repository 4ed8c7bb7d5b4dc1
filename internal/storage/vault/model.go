package vault

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Vault represents a vault record: a named container for credential items.
type Vault struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VaultCreate is the input for creating a new vault.
type VaultCreate struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Category    string
}

// Item represents a vault item record. EncryptedPassword holds the cipher
// envelope; the plaintext secret is never written to this table.
type Item struct {
	ID                uuid.UUID
	VaultID           uuid.UUID
	Name              string
	Link              string
	Username          string
	EncryptedPassword string
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ItemCreate is the input for creating a new vault item.
type ItemCreate struct {
	VaultID           uuid.UUID
	Name              string
	Link              string
	Username          string
	EncryptedPassword string
	Notes             string
}

// IVaultTable defines the interface for vault storage operations.
// Find methods return (nil, nil) when no row matches.
type IVaultTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Vault, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Vault, error)
	Insert(ctx context.Context, create *VaultCreate) (uuid.UUID, error)
	Update(ctx context.Context, vault *Vault) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// IVaultItemTable defines the interface for vault item storage operations.
type IVaultItemTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	ListByVault(ctx context.Context, vaultID uuid.UUID) ([]*Item, error)
	Insert(ctx context.Context, create *ItemCreate) (uuid.UUID, error)
	Update(ctx context.Context, item *Item) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteByVault(ctx context.Context, vaultID uuid.UUID) (int64, error)
}
