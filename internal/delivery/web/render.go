package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/notice"
	"storefront/internal/session"
	"storefront/pkg/logger"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// noticeCookie identifies a browser to the notice center. It carries no user
// data, just a random key.
const noticeCookie = "notice_key"

var pageNames = []string{
	"home",
	"product_detail",
	"order_info",
	"payment_info",
	"order_list",
	"login",
	"register",
	"profile",
	"message",
}

var templateFuncs = template.FuncMap{
	"money": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"lower": strings.ToLower,
	"localtime": func(ts string) string {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			return t.Local().Format("Jan 2, 2006 3:04 PM")
		}
		return ts
	},
}

// messageView backs the generic static info page used for fallback and
// login-prompt states.
type messageView struct {
	Heading string
	Text    string
}

// Page is the data every template render receives.
type Page struct {
	Title   string
	Session *domain.Session
	Notices []*notice.Notice
	Data    interface{}
}

// Renderer executes page templates inside the shared layout. The navbar link
// set is decided from the session at render time only; a session change made
// elsewhere shows up on the next page load.
type Renderer struct {
	pages    map[string]*template.Template
	sessions *session.Manager
	notices  *notice.Center
}

func NewRenderer(sessions *session.Manager, notices *notice.Center) *Renderer {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		pages[name] = template.Must(
			template.New("layout.gohtml").
				Funcs(templateFuncs).
				ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name+".gohtml"),
		)
	}
	return &Renderer{pages: pages, sessions: sessions, notices: notices}
}

// Render writes the page. It resolves the session and any active notices for
// this browser before executing the template.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name, title string, data interface{}) {
	tpl, ok := rn.pages[name]
	if !ok {
		logger.Error().Str("page", name).Msg("Unknown page template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page := Page{
		Title:   title,
		Session: rn.sessions.Session(r),
		Notices: rn.notices.Active(noticeKey(w, r)),
		Data:    data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tpl.ExecuteTemplate(w, "layout.gohtml", page); err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Str("page", name).Msg("Template render failed")
	}
}

// noticeKey returns this browser's notice key, minting one when absent.
func noticeKey(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(noticeCookie); err == nil && c.Value != "" {
		return c.Value
	}
	c := &http.Cookie{
		Name:     noticeCookie,
		Value:    uuid.New().String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, c)
	// A push and the following render happen in the same request; both must
	// resolve to the key minted here.
	r.AddCookie(c)
	return c.Value
}
