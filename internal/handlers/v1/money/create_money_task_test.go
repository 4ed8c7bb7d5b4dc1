package money

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/keller-networks/pms-server/internal/service"
)

type mockMoneyTaskCreator struct {
	mock.Mock
}

func (m *mockMoneyTaskCreator) CreateMoneyTask(ctx context.Context, create service.MoneyTaskCreate) (uuid.UUID, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func newCreateTaskTestAPI(t *testing.T, svc moneyTaskCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateMoneyTaskHandler(svc).Register(api)
	return api
}

func TestCreateMoneyTask_Success(t *testing.T) {
	svc := &mockMoneyTaskCreator{}
	api := newCreateTaskTestAPI(t, svc)

	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())

	svc.On("CreateMoneyTask", mock.Anything, mock.MatchedBy(func(c service.MoneyTaskCreate) bool {
		return c.UserID == userID &&
			c.BankAccountID == accountID &&
			c.Title == "Rent" &&
			c.Amount.String() == "950.00" &&
			c.Category == "housing" &&
			c.Status == "pending"
	})).Return(createdID, nil)

	resp := api.Post("/v1/money/tasks", map[string]any{
		"userID":        userID.String(),
		"bankAccountID": accountID.String(),
		"title":         "Rent",
		"amount":        "950.00",
		"category":      "housing",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), createdID.String())
	svc.AssertExpectations(t)
}

func TestCreateMoneyTask_InvalidAmount(t *testing.T) {
	svc := &mockMoneyTaskCreator{}
	api := newCreateTaskTestAPI(t, svc)

	resp := api.Post("/v1/money/tasks", map[string]any{
		"userID":        uuid.Must(uuid.NewV4()).String(),
		"bankAccountID": uuid.Must(uuid.NewV4()).String(),
		"title":         "Rent",
		"amount":        "not-a-number",
		"category":      "housing",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "CreateMoneyTask", mock.Anything, mock.Anything)
}

func TestCreateMoneyTask_AccountMissing(t *testing.T) {
	svc := &mockMoneyTaskCreator{}
	api := newCreateTaskTestAPI(t, svc)

	svc.On("CreateMoneyTask", mock.Anything, mock.Anything).
		Return(uuid.Nil, service.ErrAccountNotFound)

	resp := api.Post("/v1/money/tasks", map[string]any{
		"userID":        uuid.Must(uuid.NewV4()).String(),
		"bankAccountID": uuid.Must(uuid.NewV4()).String(),
		"title":         "Rent",
		"amount":        "950.00",
		"category":      "housing",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateMoneyTask_RejectsUnknownStatus(t *testing.T) {
	svc := &mockMoneyTaskCreator{}
	api := newCreateTaskTestAPI(t, svc)

	resp := api.Post("/v1/money/tasks", map[string]any{
		"userID":        uuid.Must(uuid.NewV4()).String(),
		"bankAccountID": uuid.Must(uuid.NewV4()).String(),
		"title":         "Rent",
		"amount":        "950.00",
		"category":      "housing",
		"status":        "done",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "CreateMoneyTask", mock.Anything, mock.Anything)
}
