package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

type ShelfHandler struct {
	shelf ports.ShelfService
	dash  *Dashboards
}

func NewShelfHandler(shelf ports.ShelfService, dash *Dashboards) *ShelfHandler {
	return &ShelfHandler{shelf: shelf, dash: dash}
}

// Shelf shows the signed-in reader's bookshelf.
//
// @Summary      Bookshelf
// @Tags         shelf
// @Produce      html
// @Success      200
// @Router       /shelf [get]
func (h *ShelfHandler) Shelf(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return h.dash.Render(c, p, http.StatusOK, nil)
}

// Add puts a book on the shelf.
//
// @Summary      Add a book
// @Tags         shelf
// @Accept       x-www-form-urlencoded
// @Param        title   formData  string  true   "Title"
// @Param        author  formData  string  false  "Author"
// @Success      303  "Redirect to the shelf"
// @Failure      400  "Shelf with a validation error"
// @Router       /shelf/add [post]
func (h *ShelfHandler) Add(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var form shelfAddForm
	if err := c.Bind(&form); err != nil {
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": badFormMessage})
	}
	if err := c.Validate(&form); err != nil {
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": inputMessage(err)})
	}

	if _, err := h.shelf.Add(c.Request().Context(), p.AccountID, form.Title, form.Author); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": inputMessage(err)})
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, PathsFor(domain.RoleReader).Dashboard)
}

// Remove takes a book off the shelf.
//
// @Summary      Remove a book
// @Tags         shelf
// @Accept       x-www-form-urlencoded
// @Param        entry_id  formData  string  true  "Shelf entry id"
// @Success      303  "Redirect to the shelf"
// @Failure      404  "Shelf with an error"
// @Router       /shelf/remove [post]
func (h *ShelfHandler) Remove(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var form shelfRemoveForm
	if err := c.Bind(&form); err != nil {
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": badFormMessage})
	}

	if err := h.shelf.Remove(c.Request().Context(), p.AccountID, form.EntryID); err != nil {
		if errors.Is(err, domain.ErrShelfEntryNotFound) {
			return h.dash.Render(c, p, http.StatusNotFound, echo.Map{"Error": "That book is not on your shelf"})
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, PathsFor(domain.RoleReader).Dashboard)
}
