package web

import (
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func TestLoginEstablishesSession(t *testing.T) {
	backend := http.NewServeMux()
	backend.Handle("POST /store/users/login", jsonHandler(http.StatusOK, buyer))

	app := newApp(t, backend)
	b := app.browser(t)

	rec := b.post("/login", url.Values{"email": {"ada@example.com"}, "password": {"secret"}})

	loc := redirectTarget(t, rec)
	assert.Equal(t, "/", loc.Path)
	assert.True(t, b.loggedIn())
}

func TestLoginRejectionShowsBackendMessage(t *testing.T) {
	backend := http.NewServeMux()
	backend.Handle("POST /store/users/login",
		jsonHandler(http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"}))

	app := newApp(t, backend)
	b := app.browser(t)

	rec := b.post("/login", url.Values{"email": {"ada@example.com"}, "password": {"wrong"}})

	// Stays on the login page, message verbatim from the backend.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	assert.False(t, b.loggedIn())
}

func TestLoginTransportFailure(t *testing.T) {
	app := newApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		conn.Close()
	}))
	b := app.browser(t)

	rec := b.post("/login", url.Values{"email": {"ada@example.com"}, "password": {"secret"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No response from server. Please try again.")
	assert.False(t, b.loggedIn())
}

func TestRegisterLogsStraightIn(t *testing.T) {
	var got domain.RegisterRequest
	backend := http.NewServeMux()
	backend.HandleFunc("POST /store/users/register", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		jsonHandler(http.StatusCreated, domain.User{ID: 8, FirstName: "Grace", Email: "grace@example.com"})(w, r)
	})

	app := newApp(t, backend)
	b := app.browser(t)

	rec := b.post("/register", url.Values{
		"firstName": {"Grace"},
		"lastName":  {"Hopper"},
		"email":     {"grace@example.com"},
		"password":  {"secret"},
	})

	loc := redirectTarget(t, rec)
	assert.Equal(t, "/", loc.Path)
	assert.True(t, b.loggedIn())
	assert.Equal(t, domain.RegisterRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "secret",
	}, got)
}

func TestRegisterRejection(t *testing.T) {
	backend := http.NewServeMux()
	backend.Handle("POST /store/users/register",
		jsonHandler(http.StatusConflict, map[string]string{"message": "Email already in use"}))

	app := newApp(t, backend)
	b := app.browser(t)

	rec := b.post("/register", url.Values{"email": {"ada@example.com"}, "password": {"secret"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already in use")
	assert.False(t, b.loggedIn())
}

func TestLogoutClearsSession(t *testing.T) {
	app := newApp(t, http.NotFoundHandler())
	b := app.browser(t)
	b.login(7)
	require.True(t, b.loggedIn())

	rec := b.post("/logout", nil)

	loc := redirectTarget(t, rec)
	assert.Equal(t, "/login", loc.Path)
	assert.False(t, b.loggedIn())

	body := b.get("/orders").Body.String()
	assert.Contains(t, body, "Please login to view orders")
}

func TestProfilePrefill(t *testing.T) {
	backend := http.NewServeMux()
	backend.Handle("GET /store/users/7/info", jsonHandler(http.StatusOK, buyer))

	app := newApp(t, backend)
	b := app.browser(t)
	b.login(7)

	body := b.get("/profile").Body.String()
	assert.Contains(t, body, `value="Ada"`)
	assert.Contains(t, body, `value="Lovelace"`)
	assert.Contains(t, body, `value="ada@example.com"`)
}

func TestProfileRequiresLogin(t *testing.T) {
	app := newApp(t, storeBackend())
	b := app.browser(t)

	rec := b.get("/profile")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please login first.")
	assert.Empty(t, app.backend.calls)
}

func TestUpdateProfile(t *testing.T) {
	var got domain.UpdateUserRequest
	backend := http.NewServeMux()
	backend.HandleFunc("PUT /store/users/7/info/update", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		jsonHandler(http.StatusOK, buyer)(w, r)
	})

	app := newApp(t, backend)
	b := app.browser(t)
	b.login(7)

	rec := b.post("/profile", url.Values{
		"firstName": {"Ada"},
		"lastName":  {"King"},
		"password":  {"newsecret"},
	})

	loc := redirectTarget(t, rec)
	assert.Equal(t, "/", loc.Path)
	assert.Equal(t, domain.UpdateUserRequest{FirstName: "Ada", LastName: "King", Password: "newsecret"}, got)
}

func TestUpdateProfileBackendFailure(t *testing.T) {
	backend := http.NewServeMux()
	backend.Handle("PUT /store/users/7/info/update",
		jsonHandler(http.StatusBadRequest, map[string]string{"message": "Password too short"}))

	app := newApp(t, backend)
	b := app.browser(t)
	b.login(7)

	rec := b.post("/profile", url.Values{"firstName": {"Ada"}, "lastName": {"King"}})

	// Re-renders the form with the submitted values kept.
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Password too short")
	assert.Contains(t, body, `value="King"`)
}

func TestNavbarFollowsSession(t *testing.T) {
	app := newApp(t, storeBackend())
	b := app.browser(t)

	body := b.get("/").Body.String()
	assert.Contains(t, body, `href="/login"`)
	assert.Contains(t, body, `href="/register"`)
	assert.NotContains(t, body, "Logout")

	b.login(7)
	body = b.get("/").Body.String()
	assert.Contains(t, body, `href="/orders"`)
	assert.Contains(t, body, `href="/profile"`)
	assert.Contains(t, body, "Logout")
	assert.NotContains(t, body, `href="/register"`)
}
