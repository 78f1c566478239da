package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"KidSafe/middlewares"
	"KidSafe/models"
	"KidSafe/repositories/mocks"
	"KidSafe/services"
)

func setupAuthRouter() (*gin.Engine, *mocks.DeviceRepository, *mocks.ChildRepository, *mocks.ChildSessionRepository) {
	gin.SetMode(gin.TestMode)

	deviceRepo := new(mocks.DeviceRepository)
	childRepo := new(mocks.ChildRepository)
	sessionRepo := new(mocks.ChildSessionRepository)

	auth := services.NewAuthService(
		new(mocks.ParentRepository), childRepo, deviceRepo, sessionRepo,
		new(mocks.AlertSettingRepository), new(mocks.AppSettingRepository),
		[]byte("test-secret"))
	SetAuthService(auth)

	r := gin.New()
	r.POST("/api/child-login", LoginChild)
	r.POST("/api/signup", Signup)
	return r, deviceRepo, childRepo, sessionRepo
}

func TestChildLoginEndpointSuccess(t *testing.T) {
	r, deviceRepo, childRepo, sessionRepo := setupAuthRouter()

	device := models.Device{ID: "dev-row-1", ChildID: "child-1", DeviceID: "tablet-abc123"}
	child := models.Child{ID: "child-1", ParentID: "parent-1", Name: "Emma", PIN: "4821"}
	deviceRepo.On("FindByDeviceID", "tablet-abc123").Return(device, nil)
	childRepo.On("FindByID", "child-1").Return(child, nil)
	deviceRepo.On("Save", mock.Anything).Return(nil)
	sessionRepo.On("Save", mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/child-login",
		strings.NewReader(`{"device_id":"tablet-abc123","pin":"4821"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// The response carries the joined device/child payload.
	assert.Contains(t, w.Body.String(), `"children"`)
	assert.Contains(t, w.Body.String(), "Emma")
	// And the payload lands in the child session cookie.
	setCookie := strings.Join(w.Header().Values("Set-Cookie"), ";")
	assert.Contains(t, setCookie, middlewares.ChildSessionCookie+"=")
}

func TestChildLoginEndpointWrongPIN(t *testing.T) {
	r, deviceRepo, childRepo, sessionRepo := setupAuthRouter()

	device := models.Device{ID: "dev-row-1", ChildID: "child-1", DeviceID: "tablet-abc123"}
	child := models.Child{ID: "child-1", PIN: "4821"}
	deviceRepo.On("FindByDeviceID", "tablet-abc123").Return(device, nil)
	childRepo.On("FindByID", "child-1").Return(child, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/child-login",
		strings.NewReader(`{"device_id":"tablet-abc123","pin":"0000"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect PIN")
	sessionRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestChildLoginEndpointUnknownDevice(t *testing.T) {
	r, deviceRepo, _, _ := setupAuthRouter()

	deviceRepo.On("FindByDeviceID", "ghost").Return(models.Device{}, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/child-login",
		strings.NewReader(`{"device_id":"ghost","pin":"1234"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "device not found")
}

func TestSignupEndpointRejectsMismatchedPasswords(t *testing.T) {
	r, _, _, _ := setupAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/signup",
		strings.NewReader(`{"name":"Jane","email":"jane@example.com","password":"secret1","confirm_password":"secret2"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "passwords do not match")
}
