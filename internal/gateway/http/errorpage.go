package http

import (
	"net/http"
	"net/url"

	"github.com/dmikalova/login-gateway/internal/gateway/domain"
	"github.com/dmikalova/login-gateway/internal/gateway/templates"
	"github.com/dmikalova/login-gateway/pkg/slogx"
)

// ErrorPageHandler renders a user-facing sign-in failure. Unknown codes
// collapse into a generic message so no internal detail reaches the page,
// and a safe returnUrl survives into the retry link.
type ErrorPageHandler struct{}

func (h *ErrorPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	family := familyFromContext(ctx)

	info := domain.ParseErrorCode(r.URL.Query().Get("code")).Info()

	returnURLParam := ""
	if returnURL := validatedReturnURL(r, family); returnURL != "" {
		returnURLParam = "?returnUrl=" + url.QueryEscape(returnURL)
	}

	page, err := templates.Render("error.html", map[string]string{
		"DOMAIN":           family.String(),
		"TITLE":            templates.EscapeHTML(info.Title),
		"MESSAGE":          templates.EscapeHTML(info.Message),
		"RETURN_URL_PARAM": returnURLParam,
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to render error page", "error", err)
		http.Error(w, "Server configuration error", http.StatusInternalServerError)
		return
	}

	writeHTML(w, page)
}
