package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stylebook/handlers"
	"stylebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		Stylist:     handlers.NewStylistHandler(nil, nil),
		Appointment: handlers.NewAppointmentHandler(nil),
		Booking:     handlers.NewBookingHandler(nil),
	})
	return r
}

func TestRegisterRoutes_ProtectedRoutesNeedToken(t *testing.T) {
	r := newEngine()
	tests := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/appointments"},
		{http.MethodGet, "/api/appointments"},
		{http.MethodGet, "/api/appointments/a-1"},
		{http.MethodPatch, "/api/appointments/a-1/status"},
		{http.MethodPut, "/api/appointments/a-1/reschedule"},
		{http.MethodPut, "/api/stylists/sty-1/schedule"},
		{http.MethodPost, "/api/booking/session"},
		{http.MethodPost, "/api/booking/session/s-1/confirm"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRegisterRoutes_PublicRoutes(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/stylists/sty-1/availability", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRoutes_PortfolioRouteIsPublic(t *testing.T) {
	r := newEngine()
	found := false
	for _, ri := range r.Routes() {
		if ri.Method == http.MethodGet && ri.Path == "/api/stylists/:id/portfolios/:portfolioId" {
			found = true
		}
	}
	assert.True(t, found)
}
