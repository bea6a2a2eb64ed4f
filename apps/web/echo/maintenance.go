package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Khadar01822/pms-dashboard/core/maintenance"
	"github.com/Khadar01822/pms-dashboard/core/tenant"
)

type maintenanceData struct {
	Page
	Tab       string
	Requests  []maintenance.Request
	ActiveN   int
	DoneN     int
	Tenants   []tenant.Tenant
	Loading   bool
}

func (s *server) maintenancePage(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	_ = s.opts.Maintenance.RefreshTenants(reqCtx)
	s.opts.Maintenance.RefreshAll(reqCtx)

	tab := ctx.QueryParam("tab")
	if tab != "completed" {
		tab = "active"
	}
	requests := s.opts.Maintenance.Active()
	if tab == "completed" {
		requests = s.opts.Maintenance.Completed()
	}

	return ctx.Render(http.StatusOK, "maintenance.html", maintenanceData{
		Page:      s.newPage("Maintenance Requests"),
		Tab:       tab,
		Requests:  requests,
		ActiveN:   len(s.opts.Maintenance.Active()),
		DoneN:     len(s.opts.Maintenance.Completed()),
		Tenants:   s.opts.Maintenance.Tenants(),
		Loading:   s.opts.Maintenance.Loading(),
	})
}

func (s *server) maintenanceCreate(ctx echo.Context) error {
	form := new(maintenance.NewRequest)
	if err := ctx.Bind(form); err != nil {
		return err
	}
	// the form derives the apartment from the selected tenant's link
	if form.Apartment == "" && form.Tenant != "" {
		for _, t := range s.opts.Maintenance.Tenants() {
			if t.ID == form.Tenant && t.Apartment != nil {
				form.Apartment = t.Apartment.ID
				break
			}
		}
	}
	_ = s.opts.Maintenance.Create(ctx.Request().Context(), *form)
	return ctx.Redirect(http.StatusSeeOther, "/maintenance")
}

func (s *server) maintenanceStatus(ctx echo.Context) error {
	status := ctx.FormValue("status")
	_ = s.opts.Maintenance.SetStatus(ctx.Request().Context(), ctx.Param("id"), status)
	return ctx.Redirect(http.StatusSeeOther, "/maintenance")
}
