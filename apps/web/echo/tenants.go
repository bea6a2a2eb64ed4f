package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Khadar01822/pms-dashboard/core/tenant"
)

type tenantsData struct {
	Page
	Tenants []tenant.Tenant
}

func (s *server) tenantsPage(ctx echo.Context) error {
	_ = s.opts.Tenants.Refresh(ctx.Request().Context())
	return ctx.Render(http.StatusOK, "tenants.html", tenantsData{
		Page:    s.newPage("Current Tenants"),
		Tenants: s.opts.Tenants.Tenants(),
	})
}

func (s *server) tenantUpdate(ctx echo.Context) error {
	form := new(tenant.UpdateTenant)
	if err := ctx.Bind(form); err != nil {
		return err
	}
	// the tagged outcome already drove the precise notification; the page
	// re-fetch shows whichever half actually landed
	_, _ = s.opts.Tenants.Update(ctx.Request().Context(), ctx.Param("id"), *form)
	return ctx.Redirect(http.StatusSeeOther, "/tenants")
}

func (s *server) tenantDelete(ctx echo.Context) error {
	_ = s.opts.Tenants.Delete(ctx.Request().Context(), ctx.Param("id"))
	return ctx.Redirect(http.StatusSeeOther, "/tenants")
}
