package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/quochuydev/pet-app/internal/auth"
	"github.com/quochuydev/pet-app/internal/config"
	domain "github.com/quochuydev/pet-app/internal/domain/appointment"
	"github.com/quochuydev/pet-app/internal/middleware"
	"github.com/quochuydev/pet-app/internal/models"
	ucappointment "github.com/quochuydev/pet-app/internal/usecase/appointment"
)

// fakeRepo is an in-memory domain.Repository for handler tests.
type fakeRepo struct {
	appointments []models.Appointment
	nextID       uint
	createErr    error
	listErr      error
	listCalls    int
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}

	f.nextID++
	ap.ID = f.nextID
	now := time.Now()
	ap.CreatedAt = now
	ap.UpdatedAt = now

	f.appointments = append(f.appointments, *ap)
	return nil
}

func (f *fakeRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Appointment{}, f.appointments...), nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func testConfig() *config.Config {
	return &config.Config{
		AdminPIN:   "123456",
		JWTSecret:  "test-secret",
		ServerPort: "8080",
		Env:        "test",
	}
}

// newTestRouter wires the API routes the way routes.RegisterRoutes does,
// but on top of an in-memory repository.
func newTestRouter(repo domain.Repository, cfg *config.Config) (*gin.Engine, *auth.TokenService) {
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenService(cfg.JWTSecret)

	createUC := ucappointment.NewCreateAppointment(repo, nil)
	listUC := ucappointment.NewListAppointments(repo)

	authHandler := NewAuthHandler(cfg, tokens, nil)
	appointmentHandler := NewAppointmentHandler(createUC, listUC)
	servicesHandler := NewServicesHandler()

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/services", servicesHandler.List)
		api.GET("/services/:slug", servicesHandler.Get)

		api.POST("/appointments", appointmentHandler.Create)

		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		secured := api.Group("/")
		secured.Use(middleware.Session(tokens))
		{
			secured.GET("/appointments", appointmentHandler.List)
		}
	}

	return r, tokens
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRaw(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func validPayload() map[string]any {
	return map[string]any{
		"fullName":      "Jane Doe",
		"email":         "jane@x.com",
		"phone":         "555-0100",
		"petName":       "Rex",
		"petType":       "dog",
		"preferredDate": "2025-06-01",
		"preferredTime": "10:00",
		"serviceType":   "checkup",
	}
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{Name: auth.SessionCookie, Value: value}
}

// expiredSessionToken signs a token with the right secret but an expiry
// in the past.
func expiredSessionToken(t *testing.T, secret string) string {
	t.Helper()

	claims := &auth.Claims{
		Role: auth.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
