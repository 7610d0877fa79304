package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUsers struct {
	signUpResp *models.User
	signUpErr  error

	loginResp string
	loginErr  error

	authResp string
	authErr  error

	listResp []*models.User
	listErr  error

	getResp *models.User
	getErr  error
}

func (f *fakeUsers) SignUp(ctx context.Context, name, lastName, email, password, phoneNumber string) (*models.User, error) {
	return f.signUpResp, f.signUpErr
}
func (f *fakeUsers) Login(ctx context.Context, email, password string) (string, error) {
	return f.loginResp, f.loginErr
}
func (f *fakeUsers) Authorize(ctx context.Context, token string) (string, error) {
	return f.authResp, f.authErr
}
func (f *fakeUsers) List(ctx context.Context) ([]*models.User, error) {
	return f.listResp, f.listErr
}
func (f *fakeUsers) Get(ctx context.Context, id string) (*models.User, error) {
	return f.getResp, f.getErr
}

// ---- helpers ----

func newTestServer(u userService) *HTTPServer {
	return NewHTTPServer("127.0.0.1:0", nopLogger{}, u)
}

func doJSON(t *testing.T, s *HTTPServer, method, target, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func bodyMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["message"]
}

// ---- tests ----

func TestSignUp_Created(t *testing.T) {
	s := newTestServer(&fakeUsers{signUpResp: &models.User{ID: "u1"}})

	w := doJSON(t, s, http.MethodPost, "/signup",
		`{"name":"A","lastName":"B","email":"a@x.com","password":"pw123","phoneNumber":"123"}`, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "User registered successfully.", bodyMessage(t, w))
}

func TestSignUp_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantMsg  string
	}{
		{"missing fields", `{"email":"a@x.com"}`, common.ErrValidation, http.StatusBadRequest, "All fields are required."},
		{"malformed json", `{"email":`, nil, http.StatusBadRequest, "All fields are required."},
		{"duplicate", `{"name":"A","lastName":"B","email":"a@x.com","password":"p","phoneNumber":"1"}`, common.ErrUserAlreadyExists, http.StatusBadRequest, "User already exists."},
		{"store down", `{"name":"A","lastName":"B","email":"a@x.com","password":"p","phoneNumber":"1"}`, errors.New("db gone"), http.StatusInternalServerError, "Internal server error."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(&fakeUsers{signUpErr: tc.svcErr})

			w := doJSON(t, s, http.MethodPost, "/signup", tc.body, "")

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantMsg, bodyMessage(t, w))
		})
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	s := newTestServer(&fakeUsers{loginResp: "tok123"})

	w := doJSON(t, s, http.MethodPost, "/login", `{"email":"a@x.com","password":"pw123"}`, "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok123", resp["token"])
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name     string
		svcErr   error
		wantCode int
		wantMsg  string
	}{
		{"bad credentials", common.ErrInvalidCredentials, http.StatusBadRequest, "Invalid email or password."},
		{"empty fields", common.ErrValidation, http.StatusBadRequest, "Invalid email or password."},
		{"store down", errors.New("db gone"), http.StatusInternalServerError, "Internal server error."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(&fakeUsers{loginErr: tc.svcErr})

			w := doJSON(t, s, http.MethodPost, "/login", `{"email":"a@x.com","password":"x"}`, "")

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantMsg, bodyMessage(t, w))
		})
	}
}

func TestListUsers_StripsPasswordHash(t *testing.T) {
	s := newTestServer(&fakeUsers{
		authResp: "u1",
		listResp: []*models.User{
			{ID: "u1", Name: "A", LastName: "B", Email: "a@x.com", PasswordHash: "$2a$10$secret", PhoneNumber: "123"},
		},
	})

	w := doJSON(t, s, http.MethodGet, "/users", "", "Bearer tok")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
	assert.NotContains(t, w.Body.String(), "password")

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "u1", resp[0]["id"])
	assert.Equal(t, "a@x.com", resp[0]["email"])
}

func TestListUsers_EmptyStoreIsEmptyArray(t *testing.T) {
	s := newTestServer(&fakeUsers{authResp: "u1"})

	w := doJSON(t, s, http.MethodGet, "/users", "", "Bearer tok")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetUser_Found(t *testing.T) {
	s := newTestServer(&fakeUsers{
		authResp: "u1",
		getResp:  &models.User{ID: "u2", Name: "C", LastName: "D", Email: "c@x.com", PasswordHash: "$2a$10$secret", PhoneNumber: "456"},
	})

	w := doJSON(t, s, http.MethodGet, "/users/u2", "", "Bearer tok")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u2", resp["id"])
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestServer(&fakeUsers{authResp: "u1", getErr: common.ErrNotFound})

	w := doJSON(t, s, http.MethodGet, "/users/ghost", "", "Bearer tok")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found.", bodyMessage(t, w))
}

func TestPing(t *testing.T) {
	s := newTestServer(&fakeUsers{})

	w := doJSON(t, s, http.MethodGet, "/ping", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
}
