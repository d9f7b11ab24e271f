package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

type JobHandler struct {
	jobs ports.JobService
	dash *Dashboards
	log  zerolog.Logger
}

func NewJobHandler(jobs ports.JobService, dash *Dashboards, log zerolog.Logger) *JobHandler {
	return &JobHandler{jobs: jobs, dash: dash, log: log}
}

// Dashboard shows the signed-in client or tradesman its jobs.
//
// @Summary      Dashboard
// @Tags         jobs
// @Produce      html
// @Success      200
// @Success      303  "Redirect to the login form"
// @Router       /client/dashboard [get]
// @Router       /tradesman/dashboard [get]
func (h *JobHandler) Dashboard(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	return h.dash.Render(c, p, http.StatusOK, nil)
}

// Post creates a job on behalf of the signed-in client.
//
// @Summary      Post a job
// @Tags         jobs
// @Accept       x-www-form-urlencoded
// @Param        title        formData  string  true   "Title"
// @Param        location     formData  string  false  "Location"
// @Param        description  formData  string  false  "Description"
// @Param        budget       formData  number  false  "Budget"
// @Success      303  "Redirect to the dashboard"
// @Failure      400  "Dashboard with a validation error"
// @Router       /client/jobs [post]
func (h *JobHandler) Post(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var form postJobForm
	if err := c.Bind(&form); err != nil {
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": badFormMessage})
	}
	if err := c.Validate(&form); err != nil {
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": inputMessage(err)})
	}

	_, err = h.jobs.Post(c.Request().Context(), p.AccountID, ports.PostJobInput{
		Title:       form.Title,
		Location:    form.Location,
		Description: form.Description,
		Budget:      form.Budget,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": inputMessage(err)})
		}
		return err
	}
	return c.Redirect(http.StatusSeeOther, PathsFor(domain.RoleClient).Dashboard)
}

// Reserve claims an available job for the signed-in tradesman.
//
// @Summary      Reserve a job
// @Tags         jobs
// @Accept       x-www-form-urlencoded
// @Param        job_id  formData  string  true  "Job id"
// @Success      303  "Redirect to the dashboard"
// @Failure      404  "Dashboard with an error"
// @Failure      409  "Dashboard with an error"
// @Router       /reserve_job [post]
func (h *JobHandler) Reserve(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var form reserveJobForm
	if err := c.Bind(&form); err != nil {
		return h.dash.Render(c, p, http.StatusBadRequest, echo.Map{"Error": badFormMessage})
	}

	err = h.jobs.Reserve(c.Request().Context(), form.JobID, p.AccountID)
	switch {
	case err == nil:
		return c.Redirect(http.StatusSeeOther, PathsFor(domain.RoleTradesman).Dashboard)
	case errors.Is(err, domain.ErrJobNotFound):
		return h.dash.Render(c, p, http.StatusNotFound, echo.Map{"Error": "That job does not exist"})
	case errors.Is(err, domain.ErrJobUnavailable):
		return h.dash.Render(c, p, http.StatusConflict, echo.Map{"Error": "That job is no longer available"})
	default:
		return err
	}
}

// SeedDemo fills the board with sample jobs. Only routed outside production.
//
// @Summary      Seed demo jobs
// @Tags         jobs
// @Success      303  "Redirect to the dashboard"
// @Router       /create_jobs [get]
func (h *JobHandler) SeedDemo(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	n, err := h.jobs.SeedDemo(c.Request().Context(), p.AccountID)
	if err != nil {
		return err
	}
	h.log.Info().Int("jobs", n).Str("tradesman_id", p.AccountID).Msg("demo jobs created")
	return c.Redirect(http.StatusSeeOther, PathsFor(domain.RoleTradesman).Dashboard)
}
