package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/board/internal/api/middleware"
	"github.com/tradeco/board/internal/core/domain"
)

// badFormMessage is shown when a form body cannot be decoded at all.
const badFormMessage = "Please check the form and try again"

// ctxPrincipal returns the session put on the context by the Session middleware.
// Routes behind a guard always have one; a miss means the route was wired without it.
func ctxPrincipal(c echo.Context) (*domain.Session, error) {
	p := middleware.Principal(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not signed in")
	}
	return p, nil
}

// render executes a page with the principal available to the layout.
func render(c echo.Context, status int, page string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	if _, ok := data["Principal"]; !ok {
		if p := middleware.Principal(c); p != nil {
			data["Principal"] = p
		}
	}
	return c.Render(status, page, data)
}

// inputMessage turns a wrapped ErrInvalidInput into text fit for a form.
func inputMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, domain.ErrInvalidInput.Error()+": "); i >= 0 {
		msg = msg[i+len(domain.ErrInvalidInput.Error())+2:]
	}
	if msg == "" {
		return badFormMessage
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func checked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false", "off":
		return false
	}
	return true
}
