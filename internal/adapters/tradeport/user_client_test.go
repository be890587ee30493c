package tradeport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/tradeport/tradeport-ui-api/internal/errors"
	"github.com/tradeport/tradeport-ui-api/internal/ports"
)

func TestNewUserClient_RequiresBaseURL(t *testing.T) {
	_, err := NewUserClient(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base URL is required")
}

func TestUserClient_ValidateIdentity_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/User/validategoogleuser", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req validateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "google-credential", req.Credential)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "backend-token",
			"user": map[string]any{
				"loginID":  "priya@tradeport.example",
				"userID":   "user-42",
				"userName": "Priya N",
				"role":     0,
				"isActive": true,
			},
		})
	}))
	t.Cleanup(server.Close)

	client, err := NewUserClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	res, err := client.ValidateIdentity(context.Background(), "google-credential")
	require.NoError(t, err)
	assert.Equal(t, "backend-token", res.Token)
	assert.Equal(t, "priya@tradeport.example", res.Account.LoginID)
	assert.Equal(t, "user-42", res.Account.UserID)
	assert.Equal(t, 0, res.Account.Role)
	assert.True(t, res.Account.IsActive)
}

func TestUserClient_ValidateIdentity_NotRegistered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"User not registered"}`, http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	client, err := NewUserClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.ValidateIdentity(context.Background(), "google-credential")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotRegistered(err))
	assert.False(t, apperrors.IsNotFound(err))
}

func TestUserClient_ValidateIdentity_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid credential"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client, err := NewUserClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.ValidateIdentity(context.Background(), "google-credential")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestUserClient_ValidateIdentity_EmptyCredential(t *testing.T) {
	client, err := NewUserClient(Config{BaseURL: "http://localhost:7237"})
	require.NoError(t, err)

	_, err = client.ValidateIdentity(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestUserClient_Register(t *testing.T) {
	var got ports.Registration
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/User/registerUser", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	client, err := NewUserClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	reg := ports.Registration{
		LoginID:  "priya@tradeport.example",
		UserName: "Priya N",
		Role:     1,
		PhoneNo:  "12345678",
		Address:  "1 Port Rd",
		IsActive: true,
	}
	require.NoError(t, client.Register(context.Background(), reg))
	assert.Equal(t, reg.LoginID, got.LoginID)
	assert.Equal(t, reg.Role, got.Role)
}

func TestUserClient_Register_Conflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"already registered"}`, http.StatusConflict)
	}))
	t.Cleanup(server.Close)

	client, err := NewUserClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	err = client.Register(context.Background(), ports.Registration{LoginID: "dup@tradeport.example"})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestUserClient_ImplementsInterface(t *testing.T) {
	client, err := NewUserClient(Config{BaseURL: "http://localhost:7237"})
	require.NoError(t, err)
	var _ ports.UserDirectory = client
}
