package main_test

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	mainapp "butik"
)

// MockPublisher is a mock implementation of services.OrderEventPublisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderPlaced(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestApp(t *testing.T) *fiberApp {
	t.Helper()

	v := viper.New()
	v.SetDefault("JWT_SECRET", "test_jwt_secret")
	v.AutomaticEnv()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	mockMQ := new(MockPublisher)
	mockMQ.On("PublishOrderPlaced", mock.Anything).Return(nil)

	app, err := mainapp.NewApp(db, mockMQ, v.GetString("JWT_SECRET"))
	if err != nil {
		t.Fatalf("Failed to build app: %v", err)
	}
	return &fiberApp{app: app}
}

func TestHealthCheck(t *testing.T) {
	a := newTestApp(t)

	resp := a.request(t, http.MethodGet, "/health")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestGatedRoutesRejectAnonymousCallers(t *testing.T) {
	a := newTestApp(t)

	for _, path := range []string{"/api/v1/me", "/api/v1/orders", "/api/v1/addresses"} {
		resp := a.request(t, http.MethodGet, path)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "expected Unauthorized for %s", path)
		resp.Body.Close()
	}
}

func TestCatalogIsPublic(t *testing.T) {
	a := newTestApp(t)

	resp := a.request(t, http.MethodGet, "/api/v1/products")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// fiberApp wraps the app with a small request helper for the smoke tests.
type fiberApp struct {
	app *fiber.App
}

func (a *fiberApp) request(t *testing.T, method, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	resp, err := a.app.Test(req, -1) // -1 for no timeout
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return resp
}
