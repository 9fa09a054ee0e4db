package web

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/notice"
	"storefront/internal/session"
	"storefront/internal/storeapi"
	"storefront/pkg/logger"
)

type AuthHandler struct {
	api      *storeapi.Client
	sessions *session.Manager
	notices  *notice.Center
	render   *Renderer
}

func NewAuthHandler(api *storeapi.Client, sessions *session.Manager, notices *notice.Center, render *Renderer) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions, notices: notices, render: render}
}

type profileView struct {
	FirstName string
	LastName  string
	Email     string
}

// failureMessage separates a backend rejection (show its message verbatim)
// from a transport failure (no response at all).
func failureMessage(err error, rejected, transport string) string {
	var apiErr *storeapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return rejected
	}
	return transport
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "login", "Login", nil)
}

// Login authenticates and establishes the session from the returned user id.
// On failure no session is written and the backend message is rendered.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req := domain.LoginRequest{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}

	user, err := h.api.Login(r.Context(), req)
	if err != nil {
		msg := failureMessage(err, "Login failed", "No response from server. Please try again.")
		h.notices.Push(noticeKey(w, r), msg, nil)
		h.render.Render(w, r, http.StatusOK, "login", "Login", nil)
		return
	}

	if err := h.sessions.Set(w, user.ID); err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to write session")
		h.notices.Push(noticeKey(w, r), "Something went wrong. Please try again.", nil)
		h.render.Render(w, r, http.StatusOK, "login", "Login", nil)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "register", "Register", nil)
}

// Register creates the account and logs the browser straight in, same as the
// login path.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req := domain.RegisterRequest{
		FirstName: strings.TrimSpace(r.FormValue("firstName")),
		LastName:  strings.TrimSpace(r.FormValue("lastName")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Password:  r.FormValue("password"),
	}

	user, err := h.api.Register(r.Context(), req)
	if err != nil {
		msg := failureMessage(err, "Registration failed", "No response from server. Please try again.")
		h.notices.Push(noticeKey(w, r), msg, nil)
		h.render.Render(w, r, http.StatusOK, "register", "Register", nil)
		return
	}

	if err := h.sessions.Set(w, user.ID); err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to write session")
		h.notices.Push(noticeKey(w, r), "Something went wrong. Please try again.", nil)
		h.render.Render(w, r, http.StatusOK, "register", "Register", nil)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session and lands on the login page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// ProfileForm prefills the profile from the account record.
func (h *AuthHandler) ProfileForm(w http.ResponseWriter, r *http.Request) {
	userID, loggedIn := h.sessions.UserID(r)
	if !loggedIn {
		h.render.Render(w, r, http.StatusOK, "message", "Profile", messageView{
			Heading: "Profile",
			Text:    "Please login first.",
		})
		return
	}

	view := profileView{}
	if user, err := h.api.GetUser(r.Context(), userID); err == nil {
		view = profileView{FirstName: user.FirstName, LastName: user.LastName, Email: user.Email}
	} else {
		msg := storeapi.Message(err, "Failed to load profile.")
		h.notices.Push(noticeKey(w, r), msg, nil)
	}

	h.render.Render(w, r, http.StatusOK, "profile", "Profile", view)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, loggedIn := h.sessions.UserID(r)
	if !loggedIn {
		h.notices.Push(noticeKey(w, r), "Please login first.", nil)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	req := domain.UpdateUserRequest{
		FirstName: strings.TrimSpace(r.FormValue("firstName")),
		LastName:  strings.TrimSpace(r.FormValue("lastName")),
		Password:  r.FormValue("password"),
	}

	if _, err := h.api.UpdateUser(r.Context(), userID, req); err != nil {
		msg := failureMessage(err,
			"Failed to update profile. Please try again later.",
			"Error: No response from server. Please try again.")
		h.notices.Push(noticeKey(w, r), msg, nil)
		h.render.Render(w, r, http.StatusOK, "profile", "Profile", profileView{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     strings.TrimSpace(r.FormValue("email")),
		})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
