// Package session holds the per-browser login state: a single userId, stored
// as a signed cookie scoped to the browser session. There is no expiry beyond
// cookie lifetime and no cross-tab coordination; anything unparseable counts
// as "no session".
package session

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/domain"
)

const cookieName = "session"

// Manager reads and writes the session cookie. It performs no network or
// validation side effects beyond signature checking.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// UserID returns the logged-in user id, or 0 and false when there is no
// usable session. A tampered or malformed cookie is treated the same as an
// absent one.
func (m *Manager) UserID(r *http.Request) (int64, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// Session returns the current session, or nil when not logged in.
func (m *Manager) Session(r *http.Request) *domain.Session {
	userID, ok := m.UserID(r)
	if !ok {
		return nil
	}
	return &domain.Session{UserID: userID}
}

func (m *Manager) IsLoggedIn(r *http.Request) bool {
	_, ok := m.UserID(r)
	return ok
}

func (m *Manager) sign(sub string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iat": time.Now().Unix(),
	})
	return token.SignedString(m.secret)
}

// Set establishes a session for userID. The cookie has no MaxAge so its
// lifetime is bounded by the browser session.
func (m *Manager) Set(w http.ResponseWriter, userID int64) error {
	signed, err := m.sign(strconv.FormatInt(userID, 10))
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

// Clear destroys the session.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
