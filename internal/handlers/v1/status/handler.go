package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// StatusOutput is the Huma output for the status endpoint.
type StatusOutput struct {
	Body StatusBody
}

// StatusBody is the response body for the status endpoint.
type StatusBody struct {
	Status string `json:"status" doc:"Service status"`
}

// Handler handles GET /v1/status.
type Handler struct{}

// NewHandler creates a new status Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-status",
		Method:      http.MethodGet,
		Path:        "/v1/status",
		Summary:     "Service status",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*StatusOutput, error) {
	return &StatusOutput{Body: StatusBody{Status: "ok"}}, nil
}
