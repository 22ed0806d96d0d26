package response

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelope(t *testing.T) {
	res := Success(http.StatusOK, map[string]string{"id": "42"})

	assert.Equal(t, "success", res.Status)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, res.Error)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"error"`)
}

func TestErrorEnvelope(t *testing.T) {
	res := Error(http.StatusNotFound, "Order not found")

	assert.Equal(t, "error", res.Status)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Order not found", res.Error)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"data"`)
}
