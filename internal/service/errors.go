package service

import "errors"

var (
	ErrEmailTaken         = errors.New("service: email already registered")
	ErrInvalidCredentials = errors.New("service: invalid email or password")
	ErrUserNotFound       = errors.New("service: user not found")
	ErrTaskNotFound       = errors.New("service: task not found")
	ErrTodoNotFound       = errors.New("service: todo not found")
	ErrEntryNotFound      = errors.New("service: diary entry not found")
	ErrEntryExists        = errors.New("service: diary entry already exists for that day")
	ErrAccountNotFound    = errors.New("service: bank account not found")
	ErrAccountNumberTaken = errors.New("service: account number already in use")
	ErrVaultNotFound      = errors.New("service: vault not found")
	ErrItemNotFound       = errors.New("service: vault item not found")
)
