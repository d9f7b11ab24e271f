package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

// Dashboards renders the landing page of whichever role is signed in. Form handlers use it
// to re-show the page with an Error or Success message.
type Dashboards struct {
	jobs  ports.JobService
	shelf ports.ShelfService
}

func NewDashboards(jobs ports.JobService, shelf ports.ShelfService) *Dashboards {
	return &Dashboards{jobs: jobs, shelf: shelf}
}

func (d *Dashboards) Render(c echo.Context, p *domain.Session, status int, extra echo.Map) error {
	ctx := c.Request().Context()
	data := echo.Map{}
	var page string

	switch p.Role {
	case domain.RoleClient:
		dash, err := d.jobs.ClientDashboard(ctx, p.AccountID)
		if err != nil {
			return err
		}
		page = "client_dashboard.html"
		data["Account"] = dash.Account
		data["Posted"] = dash.Posted
	case domain.RoleTradesman:
		dash, err := d.jobs.TradesmanDashboard(ctx, p.AccountID)
		if err != nil {
			return err
		}
		page = "tradesman_dashboard.html"
		data["Account"] = dash.Account
		data["Reserved"] = dash.Reserved
		data["Open"] = dash.Open
	case domain.RoleReader:
		acc, err := d.shelf.Shelf(ctx, p.AccountID)
		if err != nil {
			return err
		}
		page = "shelf.html"
		data["Account"] = acc
	default:
		return echo.NewHTTPError(http.StatusForbidden, "unknown role")
	}

	for k, v := range extra {
		data[k] = v
	}
	return render(c, status, page, data)
}
