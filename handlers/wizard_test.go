package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"thecut/handlers"
	"thecut/models"
	"thecut/services/wizard"
)

func newWizardRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := &wizard.DefaultWizardService{
		Sessions: client,
		Logger:   zap.NewNop(),
	}
	h := handlers.NewWizardHandler(svc, zap.NewNop())

	r := gin.New()
	r.GET("/api/booking/services", h.GetServices)
	r.GET("/api/booking/dates", h.GetDates)
	r.GET("/api/booking/times", h.GetTimes)
	r.GET("/api/booking/session/:sessionID", h.GetSession)
	return r
}

func TestGetServices(t *testing.T) {
	r := newWizardRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/services", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Services []models.Service `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Services, 4)
	assert.Equal(t, "The Executive Cut", body.Services[0].Name)
}

func TestGetDates(t *testing.T) {
	r := newWizardRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/dates", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Dates []models.CalendarDay `json:"dates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Dates, 21)
	assert.True(t, body.Dates[0].IsToday)
}

func TestGetTimes(t *testing.T) {
	r := newWizardRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/times", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Times []string `json:"times"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Times, 9)
}

func TestGetUnknownSessionReturns404(t *testing.T) {
	r := newWizardRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/booking/session/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
