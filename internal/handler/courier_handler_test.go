package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"delivery-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindLocation(t *testing.T, body string) (service.UpdateLocationRequest, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("PUT", "/courier/location", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req service.UpdateLocationRequest
	err := c.ShouldBindJSON(&req)
	return req, err
}

func TestUpdateLocationBindingAcceptsZeroCoordinates(t *testing.T) {
	tests := []struct {
		name string
		body string
		lat  float64
		lng  float64
	}{
		{"both set", `{"lat":50.45,"lng":30.52}`, 50.45, 30.52},
		{"zero latitude", `{"lat":0,"lng":30.52}`, 0, 30.52},
		{"zero longitude", `{"lat":50.45,"lng":0}`, 50.45, 0},
		{"null island", `{"lat":0,"lng":0}`, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := bindLocation(t, tt.body)
			require.NoError(t, err)
			require.NotNil(t, req.Lat)
			require.NotNil(t, req.Lng)
			assert.Equal(t, tt.lat, *req.Lat)
			assert.Equal(t, tt.lng, *req.Lng)
		})
	}
}

func TestUpdateLocationBindingRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing lat", `{"lng":30.52}`},
		{"missing lng", `{"lat":50.45}`},
		{"empty object", `{}`},
		{"latitude out of range", `{"lat":91,"lng":0}`},
		{"longitude out of range", `{"lat":0,"lng":-181}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bindLocation(t, tt.body)
			assert.Error(t, err)
		})
	}
}
