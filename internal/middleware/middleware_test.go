package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"revup/internal/access"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func init() { gin.SetMode(gin.TestMode) }

func signToken(t *testing.T, role string, exp time.Time) string {
	t.Helper()
	claims := JWTClaims{
		Username: role,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func guarded(action access.Action) *gin.Engine {
	r := gin.New()
	r.GET("/x", JWTAuth(testSecret), RequireAction(action), func(c *gin.Context) {
		c.String(http.StatusOK, GetClaims(c).Username)
	})
	return r
}

func serve(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAction(t *testing.T) {
	hour := time.Now().Add(time.Hour)
	cases := []struct {
		role   string
		action access.Action
		status int
	}{
		{"viewer", access.ActionViewReports, http.StatusOK},
		{"viewer", access.ActionRecordSale, http.StatusForbidden},
		{"staff", access.ActionRecordSale, http.StatusOK},
		{"staff", access.ActionResetRevenue, http.StatusForbidden},
		{"admin", access.ActionResetRevenue, http.StatusOK},
		{"manager", access.ActionViewItems, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.role+"/"+string(tc.action), func(t *testing.T) {
			w := serve(guarded(tc.action), signToken(t, tc.role, hour))
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestJWTAuth_Rejects(t *testing.T) {
	r := guarded(access.ActionViewItems)

	assert.Equal(t, http.StatusUnauthorized, serve(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, signToken(t, "admin", time.Now().Add(-time.Minute))).Code)

	other, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin"}).SignedString([]byte("other"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, serve(r, other).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := serve(r, "")
	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, given, w.Header().Get(RequestIDHeader))
}

func TestLoginLimiter(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewLoginLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("1.1.1.1"))
	assert.True(t, l.allow("1.1.1.1"))
	assert.False(t, l.allow("1.1.1.1"))
	assert.True(t, l.allow("2.2.2.2"))

	now = now.Add(61 * time.Second)
	assert.True(t, l.allow("1.1.1.1"))
	assert.Len(t, l.entries, 1)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/x", func(*gin.Context) { panic("boom") })

	w := serve(r, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Internal server error."}`, w.Body.String())
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS("http://localhost:5173"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
