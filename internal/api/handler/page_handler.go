package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/board/internal/api/middleware"
)

// PageHandler serves the public pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) Index(c echo.Context) error {
	return render(c, http.StatusOK, "index.html", nil)
}

// Enter sends a signed-in principal to its dashboard and shows everyone else the role picker.
func (h *PageHandler) Enter(c echo.Context) error {
	if p := middleware.Principal(c); p != nil {
		return c.Redirect(http.StatusSeeOther, PathsFor(p.Role).Dashboard)
	}
	return render(c, http.StatusOK, "enter.html", nil)
}

func (h *PageHandler) Contact(c echo.Context) error {
	return render(c, http.StatusOK, "contact.html", nil)
}
