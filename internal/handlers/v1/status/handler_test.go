package status

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler().Register(api)

	resp := api.Get("/v1/status")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"ok"`)
}
