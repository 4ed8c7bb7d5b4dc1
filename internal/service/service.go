package service

import (
	"context"

	"github.com/keller-networks/pms-server/internal/operator/actions"
	"github.com/keller-networks/pms-server/internal/storage"
	"github.com/keller-networks/pms-server/internal/vaultcipher"
)

// Delegator enqueues an action and blocks until its transaction has committed
// or rolled back. Satisfied by operator.OperatorDelegator.
type Delegator interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Auth    *AuthService
	Profile *ProfileService
	Money   *MoneyService
	Task    *TaskService
	Todo    *TodoService
	Diary   *DiaryService
	Vault   *VaultService
}

// NewService creates a new Service over the given storage, write delegator
// and vault cipher.
func NewService(store *storage.Storage, delegator Delegator, cipher *vaultcipher.Cipher) *Service {
	return &Service{
		Auth:    NewAuthService(store),
		Profile: NewProfileService(store),
		Money:   NewMoneyService(store, delegator),
		Task:    NewTaskService(store),
		Todo:    NewTodoService(store),
		Diary:   NewDiaryService(store),
		Vault:   NewVaultService(store, delegator, cipher),
	}
}
