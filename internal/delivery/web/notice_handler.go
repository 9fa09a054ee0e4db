package web

import (
	"net/http"

	"storefront/internal/notice"
)

type NoticeHandler struct {
	notices *notice.Center
}

func NewNoticeHandler(notices *notice.Center) *NoticeHandler {
	return &NoticeHandler{notices: notices}
}

// Dismiss closes a banner early and returns to the page it was shown on.
func (h *NoticeHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.notices.Dismiss(noticeKey(w, r), r.PathValue("id"))

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
