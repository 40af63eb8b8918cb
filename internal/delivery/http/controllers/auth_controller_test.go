package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cisoevents/internal/delivery/http/helpers"
	"cisoevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	loginErr     error
	loginToken   string
	loginSession *domain.Session
	lastUsername string
	lastPassword string

	logoutCalls int
	current     *domain.Session
}

func (f *fakeAuthService) Login(username, password string) (string, *domain.Session, error) {
	f.lastUsername = username
	f.lastPassword = password
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.loginToken, f.loginSession, nil
}

func (f *fakeAuthService) Logout() {
	f.logoutCalls++
	f.current = nil
}

func (f *fakeAuthService) Current() *domain.Session {
	return f.current
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		fake           *fakeAuthService
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name: "success",
			body: `{"username":"admin","password":"ciso2026"}`,
			fake: &fakeAuthService{
				loginToken:   "token-abc",
				loginSession: &domain.Session{Username: "admin", Role: "admin"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:           "wrong credentials",
			body:           `{"username":"admin","password":"nope"}`,
			fake:           &fakeAuthService{loginErr: domain.ErrInvalidCredentials},
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "invalid credentials",
		},
		{
			name:           "missing password",
			body:           `{"username":"admin"}`,
			fake:           &fakeAuthService{},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "password is required",
		},
		{
			name:           "invalid json",
			body:           `{bad`,
			fake:           &fakeAuthService{},
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger, tt.fake)
			req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			envelope := decodeEnvelope(t, rr)
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var resp LoginResponse
				require.NoError(t, json.Unmarshal(dataBytes, &resp))
				assert.Equal(t, "token-abc", resp.Token)
				assert.Equal(t, "Bearer", resp.TokenType)
				require.NotNil(t, resp.Session)
				assert.Equal(t, "admin", resp.Session.Username)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Contains(t, envelope.Error.Message, tt.wantBodySubstr, "error message")
			}
		})
	}
}

func TestAuthController_Logout(t *testing.T) {
	fake := &fakeAuthService{current: &domain.Session{Username: "admin", Role: "admin"}}
	ctrl := NewAuthController(testLogger, fake)
	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	rr := httptest.NewRecorder()

	ctrl.Logout(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, fake.logoutCalls)
	envelope := decodeEnvelope(t, rr)
	require.Nil(t, envelope.Error)
}

func TestAuthController_Session(t *testing.T) {
	t.Run("active session", func(t *testing.T) {
		fake := &fakeAuthService{current: &domain.Session{Username: "admin", Role: "admin"}}
		ctrl := NewAuthController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
		rr := httptest.NewRecorder()

		ctrl.Session(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.Nil(t, envelope.Error)
	})

	t.Run("no session", func(t *testing.T) {
		fake := &fakeAuthService{}
		ctrl := NewAuthController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
		rr := httptest.NewRecorder()

		ctrl.Session(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeUnauthorized, envelope.Error.Code)
	})
}
