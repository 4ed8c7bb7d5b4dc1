package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/keller-networks/pms-server/internal/operator/actions"
	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/storage/vault"
	"github.com/keller-networks/pms-server/internal/vaultcipher"
)

const vaultTestKey = "0123456789abcdef0123456789abcdef"

func newTestVaultService(t *testing.T) (*VaultService, *mockVaultTable, *mockVaultItemTable, *mockDelegator, *vaultcipher.Cipher) {
	t.Helper()
	cipher, err := vaultcipher.NewCipher(vaultTestKey)
	assert.NoError(t, err)

	vaults := &mockVaultTable{}
	items := &mockVaultItemTable{}
	delegator := &mockDelegator{}
	store := &storage.Storage{Vaults: vaults, VaultItems: items}
	return NewVaultService(store, delegator, cipher), vaults, items, delegator, cipher
}

func TestCreateItem_StoresEnvelopeNotPlaintext(t *testing.T) {
	svc, vaults, items, _, cipher := newTestVaultService(t)

	vaultID := uuid.Must(uuid.NewV4())
	expectedID := uuid.Must(uuid.NewV4())

	vaults.On("FindByID", mock.Anything, vaultID).Return(&vault.Vault{ID: vaultID}, nil)
	items.On("Insert", mock.Anything, mock.MatchedBy(func(c *vault.ItemCreate) bool {
		if c.EncryptedPassword == "hunter2" || c.EncryptedPassword == "" {
			return false
		}
		plaintext, err := cipher.Decrypt(c.EncryptedPassword)
		return err == nil && plaintext == "hunter2"
	})).Return(expectedID, nil)

	id, err := svc.CreateItem(context.Background(), VaultItemCreate{
		VaultID:  vaultID,
		Name:     "github",
		Username: "jamie",
		Password: "hunter2",
	})

	assert.NoError(t, err)
	assert.Equal(t, expectedID, id)
	items.AssertExpectations(t)
}

func TestCreateItem_VaultMissing(t *testing.T) {
	svc, vaults, items, _, _ := newTestVaultService(t)

	vaultID := uuid.Must(uuid.NewV4())
	vaults.On("FindByID", mock.Anything, vaultID).Return(nil, nil)

	_, err := svc.CreateItem(context.Background(), VaultItemCreate{VaultID: vaultID})

	assert.ErrorIs(t, err, ErrVaultNotFound)
	items.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestListItems_DecryptsPasswords(t *testing.T) {
	svc, vaults, items, _, cipher := newTestVaultService(t)

	vaultID := uuid.Must(uuid.NewV4())
	envelope, err := cipher.Encrypt("hunter2")
	assert.NoError(t, err)

	vaults.On("FindByID", mock.Anything, vaultID).Return(&vault.Vault{ID: vaultID}, nil)
	items.On("ListByVault", mock.Anything, vaultID).Return([]*vault.Item{
		{
			ID:                uuid.Must(uuid.NewV4()),
			VaultID:           vaultID,
			Name:              "github",
			Username:          "jamie",
			EncryptedPassword: envelope,
		},
	}, nil)

	listed, err := svc.ListItems(context.Background(), vaultID)

	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, "hunter2", listed[0].Password)
}

func TestListItems_CorruptEnvelopeYieldsEmptyPassword(t *testing.T) {
	svc, vaults, items, _, _ := newTestVaultService(t)

	vaultID := uuid.Must(uuid.NewV4())
	vaults.On("FindByID", mock.Anything, vaultID).Return(&vault.Vault{ID: vaultID}, nil)
	items.On("ListByVault", mock.Anything, vaultID).Return([]*vault.Item{
		{
			ID:                uuid.Must(uuid.NewV4()),
			VaultID:           vaultID,
			Name:              "github",
			EncryptedPassword: "not-an-envelope",
		},
	}, nil)

	listed, err := svc.ListItems(context.Background(), vaultID)

	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Empty(t, listed[0].Password)
}

func TestUpdateItem_EmptyPasswordClearsEnvelope(t *testing.T) {
	svc, _, items, _, cipher := newTestVaultService(t)

	itemID := uuid.Must(uuid.NewV4())
	envelope, err := cipher.Encrypt("hunter2")
	assert.NoError(t, err)

	items.On("FindByID", mock.Anything, itemID).Return(&vault.Item{
		ID:                itemID,
		Name:              "github",
		EncryptedPassword: envelope,
	}, nil)
	items.On("Update", mock.Anything, mock.MatchedBy(func(row *vault.Item) bool {
		return row.EncryptedPassword == ""
	})).Return(true, nil)

	empty := ""
	err = svc.UpdateItem(context.Background(), itemID, VaultItemUpdate{Password: &empty})

	assert.NoError(t, err)
	items.AssertExpectations(t)
}

func TestDeleteVault_Delegated(t *testing.T) {
	svc, _, _, delegator, _ := newTestVaultService(t)

	vaultID := uuid.Must(uuid.NewV4())
	delegator.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		del, ok := a.(*actions.DeleteVault)
		return ok && del.VaultID == vaultID
	})).Return(nil)

	assert.NoError(t, svc.DeleteVault(context.Background(), vaultID))
	delegator.AssertExpectations(t)
}

func TestDeleteVault_NotFound(t *testing.T) {
	svc, _, _, delegator, _ := newTestVaultService(t)

	delegator.On("Process", mock.Anything, mock.Anything).
		Return(actions.ErrVaultNotFound)

	err := svc.DeleteVault(context.Background(), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, ErrVaultNotFound)
}
