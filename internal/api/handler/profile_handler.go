package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/api/middleware"
	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

// ProfileHandler lets any signed-in principal edit or delete its own account.
type ProfileHandler struct {
	profile      ports.ProfileService
	dash         *Dashboards
	secureCookie bool
	log          zerolog.Logger
}

func NewProfileHandler(profile ports.ProfileService, dash *Dashboards, secureCookie bool, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{profile: profile, dash: dash, secureCookie: secureCookie, log: log}
}

// Update overwrites the profile fields that were filled in.
//
// @Summary      Update profile
// @Tags         profile
// @Accept       x-www-form-urlencoded
// @Param        name           formData  string  false  "First name"
// @Param        surname        formData  string  false  "Surname"
// @Param        email          formData  string  false  "Email"
// @Param        date_of_birth  formData  string  false  "Date of birth (YYYY-MM-DD)"
// @Param        city           formData  string  false  "City"
// @Param        country        formData  string  false  "Country"
// @Param        bio            formData  string  false  "About you"
// @Success      200  "Dashboard with a success message"
// @Failure      400  "Dashboard with a validation error"
// @Failure      409  "Dashboard with a conflict error"
// @Router       /update_user [post]
func (h *ProfileHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var form updateProfileForm
	if err := c.Bind(&form); err != nil {
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": badFormMessage})
	}
	if err := c.Validate(&form); err != nil {
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": inputMessage(err)})
	}

	_, err = h.profile.Update(c.Request().Context(), p, ports.UpdateProfileInput{
		Name:        form.Name,
		Surname:     form.Surname,
		Email:       form.Email,
		DateOfBirth: form.DateOfBirth,
		City:        form.City,
		Country:     form.Country,
		Bio:         form.Bio,
	})
	switch {
	case err == nil:
		return h.dash.Render(c, p, http.StatusOK, echo.Map{"Success": "Profile updated"})
	case errors.Is(err, domain.ErrInvalidInput):
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": inputMessage(err)})
	case errors.Is(err, domain.ErrAccountExists):
		return h.dash.Render(c, p, http.StatusConflict, echo.Map{"Error": "That email is already in use"})
	default:
		return err
	}
}

// ChangePassword replaces the password after checking the current one.
//
// @Summary      Change password
// @Tags         profile
// @Accept       x-www-form-urlencoded
// @Param        old_password      formData  string  true  "Current password"
// @Param        new_password      formData  string  true  "New password"
// @Param        confirm_password  formData  string  true  "New password again"
// @Success      200  "Dashboard with a success message"
// @Failure      400  "Dashboard with an error"
// @Router       /change_password [post]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var form changePasswordForm
	if err := c.Bind(&form); err != nil {
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": badFormMessage})
	}

	err = h.profile.ChangePassword(c.Request().Context(), p, form.OldPassword, form.NewPassword, form.ConfirmPassword)
	switch {
	case err == nil:
		return h.dash.Render(c, p, http.StatusOK, echo.Map{"Success": "Password changed"})
	case errors.Is(err, domain.ErrIncorrectOldPassword):
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": "Incorrect old password"})
	case errors.Is(err, domain.ErrPasswordMismatch):
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": "New passwords do not match"})
	case errors.Is(err, domain.ErrInvalidInput):
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": inputMessage(err)})
	default:
		return err
	}
}

// Delete removes the account after re-checking the password, then signs out.
//
// @Summary      Delete account
// @Tags         profile
// @Accept       x-www-form-urlencoded
// @Param        password  formData  string  true  "Password"
// @Success      303  "Redirect to /"
// @Failure      400  "Dashboard with an error"
// @Router       /delete_user [post]
func (h *ProfileHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var form deleteAccountForm
	if err := c.Bind(&form); err != nil {
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": badFormMessage})
	}

	if err := h.profile.Delete(c.Request().Context(), p, form.Password); err != nil {
		if errors.Is(err, domain.ErrIncorrectPassword) {
			return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": "Incorrect password"})
		}
		return err
	}

	middleware.ClearSessionCookie(c, h.secureCookie)
	return c.Redirect(http.StatusSeeOther, "/")
}
