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

// AuthHandler serves the login, registration and logout routes of every role.
type AuthHandler struct {
	authService  ports.AuthService
	secureCookie bool
	log          zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, secureCookie bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie, log: log}
}

// LoginForm shows the login page of role, or the dashboard when already logged in as role.
//
// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Success      200
// @Success      303
// @Router       /client/login [get]
// @Router       /tradesman/login [get]
// @Router       /sign_in [get]
func (h *AuthHandler) LoginForm(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		if p := middleware.Principal(c); p != nil && p.Role == role {
			return c.Redirect(http.StatusSeeOther, PathsFor(role).Dashboard)
		}
		return h.renderLogin(c, http.StatusOK, role, "", "")
	}
}

// Login authenticates a principal of role and starts its session.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        email     formData  string  false  "Email (client, tradesman)"
// @Param        username  formData  string  false  "Username (reader)"
// @Param        password  formData  string  true   "Password"
// @Param        remember  formData  string  false  "Keep me signed in"
// @Success      303  "Redirect to the dashboard"
// @Failure      401  "Login form with a generic error"
// @Router       /login_client [post]
// @Router       /login_tradesman [post]
// @Router       /sign_in [post]
func (h *AuthHandler) Login(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form loginForm
		if err := c.Bind(&form); err != nil {
			return h.renderLogin(c, http.StatusBadRequest, role, "", invalidCredentials(role))
		}

		_, issued, err := h.authService.Login(c.Request().Context(), role, form.identifier(role), form.Password, checked(form.Remember))
		if err != nil {
			if errors.Is(err, domain.ErrAccountNotFound) {
				return h.renderLogin(c, http.StatusUnauthorized, role, form.identifier(role), invalidCredentials(role))
			}
			return err
		}

		middleware.SetSessionCookie(c, issued, h.secureCookie)
		return c.Redirect(http.StatusSeeOther, PathsFor(role).Dashboard)
	}
}

// RegisterForm shows the registration page of role.
//
// @Summary      Registration form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /client/register [get]
// @Router       /tradesman/register [get]
// @Router       /sign_up [get]
func (h *AuthHandler) RegisterForm(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		if p := middleware.Principal(c); p != nil && p.Role == role {
			return c.Redirect(http.StatusSeeOther, PathsFor(role).Dashboard)
		}
		return h.renderRegister(c, http.StatusOK, role, registerForm{}, "")
	}
}

// Register creates an account of role and logs it in.
//
// @Summary      Register
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        email             formData  string  false  "Email (client, tradesman)"
// @Param        username          formData  string  false  "Username (reader)"
// @Param        password          formData  string  true   "Password"
// @Param        confirm_password  formData  string  true   "Password confirmation"
// @Success      303  "Redirect to the dashboard"
// @Failure      400  "Form with a validation error"
// @Failure      409  "Form with a conflict error"
// @Router       /register_client [post]
// @Router       /register_tradesman [post]
// @Router       /sign_up [post]
func (h *AuthHandler) Register(role domain.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form registerForm
		if err := c.Bind(&form); err != nil {
			return h.renderRegister(c, http.StatusBadRequest, role, form, badFormMessage)
		}
		if err := c.Validate(&form); err != nil {
			return h.renderRegister(c, http.StatusBadRequest, role, form, inputMessage(err))
		}

		_, issued, err := h.authService.Register(c.Request().Context(), form.input(role))
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrAccountExists):
			return h.renderRegister(c, http.StatusConflict, role, form, "An account with that "+role.IdentifierField()+" already exists")
		case errors.Is(err, domain.ErrPasswordMismatch):
			return h.renderRegister(c, http.StatusBadRequest, role, form, "Passwords do not match")
		case errors.Is(err, domain.ErrInvalidInput):
			return h.renderRegister(c, http.StatusBadRequest, role, form, inputMessage(err))
		default:
			return err
		}

		middleware.SetSessionCookie(c, issued, h.secureCookie)
		return c.Redirect(http.StatusSeeOther, PathsFor(role).Dashboard)
	}
}

// Logout ends the current session. Calling it without one is harmless.
//
// @Summary      Logout
// @Tags         auth
// @Success      303  "Redirect to /"
// @Router       /logout [post]
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.SessionToken(c)
	if token == "" {
		if ck, err := c.Cookie(middleware.SessionCookieName); err == nil {
			token = ck.Value
		}
	}
	if token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			h.log.Warn().Err(err).Msg("logout failed")
		}
	}
	middleware.ClearSessionCookie(c, h.secureCookie)
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *AuthHandler) renderLogin(c echo.Context, status int, role domain.Role, identifier, msg string) error {
	paths := PathsFor(role)
	data := echo.Map{
		"Role":            role,
		"Heading":         paths.Label + " login",
		"Action":          paths.LoginAction,
		"RegisterPath":    paths.Register,
		"IdentifierField": role.IdentifierField(),
		"Identifier":      identifier,
	}
	if msg != "" {
		data["Error"] = msg
	}
	return render(c, status, "login.html", data)
}

func (h *AuthHandler) renderRegister(c echo.Context, status int, role domain.Role, form registerForm, msg string) error {
	paths := PathsFor(role)
	form.Password, form.ConfirmPassword = "", ""
	data := echo.Map{
		"Role":            role,
		"Heading":         paths.Label + " registration",
		"Action":          paths.RegisterAction,
		"LoginPath":       paths.Login,
		"IdentifierField": role.IdentifierField(),
		"Form":            form,
	}
	if msg != "" {
		data["Error"] = msg
	}
	return render(c, status, "register.html", data)
}

// invalidCredentials never says which of the two fields was wrong.
func invalidCredentials(role domain.Role) string {
	return "Invalid " + role.IdentifierField() + " or password"
}
