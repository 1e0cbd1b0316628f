package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"greenhouse/database"
	"greenhouse/pkg/auth/repositoryImp"
	"greenhouse/pkg/auth/serviceImp"
	"greenhouse/pkg/mailer"
)

func newTestEcho(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	h := New(serviceImp.New(repositoryImp.New(db), mailer.New("", 0, "", "", ""), "test-secret"))
	e := echo.New()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/verify", h.Verify)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/resend-code", h.ResendCode)
	e.GET("/auth/check-username", h.CheckUsername)
	return e, db
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func code(t *testing.T, db *gorm.DB, email string) string {
	t.Helper()
	u, err := repositoryImp.New(db).FindByEmail(email)
	require.NoError(t, err)
	require.NotNil(t, u.VerificationCode)
	return *u.VerificationCode
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	e, db := newTestEcho(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"username":"alice","email":"alice@example.com"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "Username, email, and password are required")

	rec = doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"pw123456"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"pw123456"}`)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Please verify your email address before logging in")

	rec = doJSON(e, http.MethodPost, "/auth/verify",
		`{"email":"alice@example.com","code":"`+code(t, db, "alice@example.com")+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/login", `{"username":"alice","password":"pw123456"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "alice", resp.User.Username)
	// The password hash never leaves the API.
	require.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterConflictStatus(t *testing.T) {
	e, _ := newTestEcho(t)

	doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"pw123456"}`)
	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"new@example.com","password":"pw123456"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "Username or email already exists")
}

func TestResendForUnknownEmail(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(e, http.MethodPost, "/auth/resend-code", `{"email":"ghost@example.com"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "User not found")
}

func TestCheckUsername(t *testing.T) {
	e, _ := newTestEcho(t)

	doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"pw123456"}`)

	rec := doJSON(e, http.MethodGet, "/auth/check-username?username=alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"exists":true}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/auth/check-username?username=bob", "")
	require.JSONEq(t, `{"exists":false}`, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/auth/check-username", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
