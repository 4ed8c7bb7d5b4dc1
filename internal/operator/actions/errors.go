package actions

import "errors"

// Action failures the HTTP layer maps to client errors rather than 500s.
var (
	ErrAccountNotFound      = errors.New("bank account not found")
	ErrAccountNumberTaken   = errors.New("account number already exists")
	ErrTaskNotFound         = errors.New("money task not found")
	ErrVaultNotFound        = errors.New("vault not found")
	ErrAccountOwnerMismatch = errors.New("bank account does not belong to user")
)
