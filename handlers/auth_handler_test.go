package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ts := newTestServer(t)

	code, body := ts.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     "alice@example.com",
		"password":  "password123",
		"firstName": "Alice",
		"lastName":  "Smith",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "User created successfully", body["message"])
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, "Alice", user["firstName"])
	// The password hash never leaves the server
	_, leaked := user["passwordHash"]
	assert.False(t, leaked)
	_, leaked = user["password_hash"]
	assert.False(t, leaked)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "taken@example.com")

	code, body := ts.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     "taken@example.com",
		"password":  "password123",
		"firstName": "Other",
		"lastName":  "Person",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "User already exists with this email", body["message"])
}

func TestRegister_Validation(t *testing.T) {
	ts := newTestServer(t)

	// Missing email
	code, body := ts.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"password":  "password123",
		"firstName": "A",
		"lastName":  "B",
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation error", body["message"])
	assert.Equal(t, "email is required", body["details"])

	// Malformed email
	code, body = ts.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     "not-an-email",
		"password":  "password123",
		"firstName": "A",
		"lastName":  "B",
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation error", body["message"])
	assert.Equal(t, "email must be a valid email address", body["details"])

	// Short password
	code, body = ts.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"email":     "short@example.com",
		"password":  "short",
		"firstName": "A",
		"lastName":  "B",
	})
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "password must be at least 8 characters", body["details"])
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "bob@example.com")

	code, body := ts.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "bob@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Login successful", body["message"])
	assert.NotEmpty(t, body["token"])

	// Wrong password
	code, body = ts.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "bob@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", body["message"])

	// Unknown email looks identical to a wrong password
	code, body = ts.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", body["message"])
}

func TestSocialAuthStubs(t *testing.T) {
	ts := newTestServer(t)

	code, body := ts.do(t, http.MethodPost, "/api/auth/google", "", gin.H{"idToken": "x"})
	assert.Equal(t, http.StatusNotImplemented, code)
	assert.Equal(t, "Google authentication not configured", body["message"])

	code, body = ts.do(t, http.MethodPost, "/api/auth/apple", "", gin.H{"identityToken": "x"})
	assert.Equal(t, http.StatusNotImplemented, code)
	assert.Equal(t, "Apple Sign In not configured", body["message"])
}
