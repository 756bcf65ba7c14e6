// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/region-mirror/models"
)

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/accounts/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin", creds.Username)
		assert.Equal(t, "secret", creds.Password)

		http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "abc123"})
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	session, err := Login(context.Background(), LoginConfig{BaseURL: srv.URL}, models.Credentials{
		Username: "admin",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "sessionid=abc123", session.Cookie)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := Login(context.Background(), LoginConfig{BaseURL: srv.URL}, models.Credentials{
		Username: "admin",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_NoSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := Login(context.Background(), LoginConfig{BaseURL: srv.URL}, models.Credentials{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no session cookie")
}
