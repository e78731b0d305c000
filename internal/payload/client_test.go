package payload

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "admin-token", 5*time.Second)
}

func TestFindUserByEmailFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		assert.Equal(t, "marina@monynha.com", r.URL.Query().Get("where[email][equals]"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"docs": []map[string]string{{"id": "u-1", "email": "marina@monynha.com", "role": "admin"}},
		})
	})

	user, err := client.FindUserByEmail(context.Background(), "marina@monynha.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u-1", user.ID)
}

func TestFindUserByEmailMissingReturnsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"docs": []interface{}{}})
	})

	user, err := client.FindUserByEmail(context.Background(), "nobody@monynha.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreateUserSendsPassword(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "marina@monynha.com", body["email"])
		assert.Equal(t, "admin", body["role"])
		assert.NotEmpty(t, body["password"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"doc": map[string]string{"id": "u-9", "email": body["email"]},
		})
	})

	user, err := client.CreateUser(context.Background(), &User{
		Email: "marina@monynha.com", Name: "Marina", Role: "admin",
	}, "s3cret-generated")
	require.NoError(t, err)
	assert.Equal(t, "u-9", user.ID)
}

func TestDeleteUserTolerates404(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	assert.NoError(t, client.DeleteUser(context.Background(), "u-gone"))
}

func TestNon2xxSurfacesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.FindUserByEmail(context.Background(), "x@y.z")
	require.Error(t, err)
	assert.ErrorContains(t, err, "502")
	assert.ErrorContains(t, err, "upstream exploded")
}

func TestForgotPassword(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "/users/forgot-password", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})

	require.NoError(t, client.ForgotPassword(context.Background(), "marina@monynha.com"))
	assert.True(t, called)
}
