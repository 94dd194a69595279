// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/internal/store"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService / UserService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	createUserFn        func(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	getUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	getUserByIDFn       func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	return m.createUserFn(ctx, request)
}

func (m *mockUserService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.getUserByUsernameFn(ctx, username)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithServices builds a Handler with the given mocks; nil fields are
// fine as long as the handler under test never touches them.
func newHandlerWithServices(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// validRegistration is a convenience fixture used across multiple tests.
var validRegistration = models.CreateUserRequest{
	Username:        "alice",
	Password:        "testPassword",
	ConfirmPassword: "testPassword",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 201 Created, a JSON user body, and an Authorization header containing the
// issued Bearer token.
func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	users := &mockUserService{
		createUserFn: func(_ context.Context, request models.CreateUserRequest) (models.User, error) {
			return models.User{UserID: 1, Username: request.Username}, nil
		},
	}
	auth := &mockAuthService{
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthService: auth, UserService: users})
	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader(jsonBody(t, validRegistration)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var created models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "alice", created.Username)
}

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestRegister_PasswordPolicyViolation(t *testing.T) {
	users := &mockUserService{
		createUserFn: func(_ context.Context, _ models.CreateUserRequest) (models.User, error) {
			return models.User{}, service.ErrValidationPasswordTooShort
		},
	}

	h := newHandlerWithServices(t, &service.Services{UserService: users})
	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader(jsonBody(t, validRegistration)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_UsernameTaken(t *testing.T) {
	users := &mockUserService{
		createUserFn: func(_ context.Context, _ models.CreateUserRequest) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}

	h := newHandlerWithServices(t, &service.Services{UserService: users})
	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader(jsonBody(t, validRegistration)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_TokenCreationFails(t *testing.T) {
	users := &mockUserService{
		createUserFn: func(_ context.Context, request models.CreateUserRequest) (models.User, error) {
			return models.User{UserID: 1, Username: request.Username}, nil
		},
	}
	auth := &mockAuthService{
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthService: auth, UserService: users})
	req := httptest.NewRequest(http.MethodPost, "/api/user/create", strings.NewReader(jsonBody(t, validRegistration)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.User, error) {
			return models.User{UserID: 7, Username: request.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthService: auth})
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "testPassword"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthService: auth})
	body := jsonBody(t, models.LoginRequest{Username: "alice", Password: "guessed-wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid username/password")
}

func TestLogin_UnknownUser(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newHandlerWithServices(t, &service.Services{AuthService: auth})
	body := jsonBody(t, models.LoginRequest{Username: "ghost", Password: "whatever"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	// unknown user and wrong password are indistinguishable to the caller
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
