package middlewares

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"KidSafe/models"
	"KidSafe/repositories/mocks"
	"KidSafe/services"
)

var testJWTKey = []byte("test-secret")

func newGateRouter() (*gin.Engine, *mocks.ChildSessionRepository) {
	gin.SetMode(gin.TestMode)

	sessionRepo := new(mocks.ChildSessionRepository)
	auth := services.NewAuthService(
		new(mocks.ParentRepository), new(mocks.ChildRepository),
		new(mocks.DeviceRepository), sessionRepo,
		new(mocks.AlertSettingRepository), new(mocks.AppSettingRepository),
		testJWTKey)

	r := gin.New()
	r.Use(PageGateMiddleware(auth, services.NewSessionResolver()))
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/", ok)
	r.GET("/login", ok)
	// Handlers echo the context identity so the tests can see what the
	// gate passed through.
	r.GET("/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "parent_id="+c.GetString("parent_id"))
	})
	r.GET("/child-dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "child_id="+c.GetString("child_id"))
	})
	return r, sessionRepo
}

func parentToken(t *testing.T) string {
	claims := &services.Claims{
		UserID:   "parent-1",
		UserType: "parent",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testJWTKey)
	assert.NoError(t, err)
	return token
}

func TestGateRedirectsUnauthenticatedParentRoute(t *testing.T) {
	r, _ := newGateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestGateRedirectsAuthenticatedAwayFromLogin(t *testing.T) {
	r, _ := newGateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: ParentSessionCookie, Value: parentToken(t)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestGateRootRedirectsToDashboard(t *testing.T) {
	r, _ := newGateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ParentSessionCookie, Value: parentToken(t)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestGateChildRouteWithoutPayload(t *testing.T) {
	r, _ := newGateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/child-dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/child-login", w.Header().Get("Location"))
}

func TestGateChildRouteClearsBrokenPayload(t *testing.T) {
	r, _ := newGateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/child-dashboard", nil)
	req.AddCookie(&http.Cookie{Name: ChildSessionCookie, Value: "not-a-payload"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/child-login", w.Header().Get("Location"))

	// The broken payload is dropped, never rendered partially.
	setCookie := strings.Join(w.Header().Values("Set-Cookie"), ";")
	assert.Contains(t, setCookie, ChildSessionCookie+"=")
	assert.Contains(t, setCookie, "Max-Age=0")
}

func TestGateExpiredParentTokenTreatedAsLoggedOut(t *testing.T) {
	r, _ := newGateRouter()

	claims := &services.Claims{
		UserID:   "parent-1",
		UserType: "parent",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testJWTKey)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: ParentSessionCookie, Value: expired})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestGatePassesParentIdentityToPageHandlers(t *testing.T) {
	r, _ := newGateRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: ParentSessionCookie, Value: parentToken(t)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "parent_id=parent-1", w.Body.String())
}

func TestGatePassesChildIdentityToPageHandlers(t *testing.T) {
	r, sessionRepo := newGateRouter()

	claims := &services.Claims{
		UserID:    "child-1",
		UserType:  "child",
		SessionID: "sess-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testJWTKey)
	assert.NoError(t, err)
	sessionRepo.On("FindByID", "sess-1").Return(models.ChildSession{
		ID: "sess-1", ChildID: "child-1", DeviceID: "dev-row-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	raw, err := json.Marshal(services.ChildSessionPayload{
		Device: models.Device{ID: "dev-row-1", ChildID: "child-1"},
		Child:  models.Child{ID: "child-1", ParentID: "parent-1", Name: "Emma"},
		Token:  token,
	})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/child-dashboard", nil)
	// Stored the way gin's SetCookie writes it.
	req.AddCookie(&http.Cookie{Name: ChildSessionCookie, Value: url.QueryEscape(string(raw))})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "child_id=child-1", w.Body.String())
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := services.NewAuthService(
		new(mocks.ParentRepository), new(mocks.ChildRepository),
		new(mocks.DeviceRepository), new(mocks.ChildSessionRepository),
		new(mocks.AlertSettingRepository), new(mocks.AppSettingRepository),
		testJWTKey)

	r := gin.New()
	r.GET("/api/children", AuthMiddleware(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"parent_id": c.GetString("parent_id")})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/children", nil)
	req.Header.Set("Authorization", "Bearer "+parentToken(t))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "parent-1")

	// No token at all is a 401, not a redirect: this is the API surface.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/children", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
