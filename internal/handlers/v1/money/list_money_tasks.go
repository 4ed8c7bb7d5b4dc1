package money

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/keller-networks/pms-server/internal/logging"
	"github.com/keller-networks/pms-server/internal/service"
)

// ListMoneyTasksInput is the Huma input for listing a user's money tasks.
type ListMoneyTasksInput struct {
	UserID string `path:"userID" doc:"Owner UUID"`
}

// ListMoneyTasksOutput is the Huma output for listing money tasks.
type ListMoneyTasksOutput struct {
	Body struct {
		Tasks []MoneyTask `json:"tasks" doc:"The user's money tasks with account fields joined in"`
	}
}

// moneyTaskLister is the interface for listing money tasks.
type moneyTaskLister interface {
	ListMoneyTasks(ctx context.Context, userID uuid.UUID) ([]service.MoneyTask, error)
}

// ListMoneyTasksHandler handles GET /v1/money/tasks/user/{userID}.
type ListMoneyTasksHandler struct {
	Money moneyTaskLister
}

// NewListMoneyTasksHandler creates a new ListMoneyTasksHandler.
func NewListMoneyTasksHandler(svc moneyTaskLister) *ListMoneyTasksHandler {
	return &ListMoneyTasksHandler{Money: svc}
}

// Register registers the list money tasks endpoint with the Huma API.
func (h *ListMoneyTasksHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-money-tasks",
		Method:      http.MethodGet,
		Path:        "/v1/money/tasks/user/{userID}",
		Summary:     "List money tasks",
		Tags:        []string{"Money"},
	}, h.handle)
}

func (h *ListMoneyTasksHandler) handle(ctx context.Context, input *ListMoneyTasksInput) (*ListMoneyTasksOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listMoneyTasksMs")
	}
	tasks, err := h.Money.ListMoneyTasks(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list money tasks", err)
	}

	if logData != nil {
		logData.AddData("taskCount", len(tasks))
	}

	out := &ListMoneyTasksOutput{}
	out.Body.Tasks = make([]MoneyTask, len(tasks))
	for i, task := range tasks {
		out.Body.Tasks[i] = moneyTaskToAPI(task)
	}
	return out, nil
}
