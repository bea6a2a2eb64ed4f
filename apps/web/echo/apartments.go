package echoweb

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Khadar01822/pms-dashboard/core/apartment"
)

type (
	apartmentsData struct {
		Page
		Cards []apartment.UnitCard
		Form  apartment.NewApartment
	}

	attachData struct {
		Page
		Apartment apartment.Apartment
		Form      apartment.TenantForm
	}
)

func (s *server) apartmentsPage(ctx echo.Context) error {
	_ = s.opts.Apartments.Refresh(ctx.Request().Context())
	return s.renderApartments(ctx, apartment.NewApartment{Status: apartment.StatusVacant})
}

func (s *server) renderApartments(ctx echo.Context, form apartment.NewApartment) error {
	return ctx.Render(http.StatusOK, "apartments.html", apartmentsData{
		Page:  s.newPage("Apartments"),
		Cards: s.opts.Apartments.Cards(),
		Form:  form,
	})
}

func (s *server) apartmentCreate(ctx echo.Context) error {
	form := new(apartment.NewApartment)
	if err := ctx.Bind(form); err != nil {
		return err
	}
	if _, err := s.opts.Apartments.Create(ctx.Request().Context(), *form); err != nil {
		// notification already recorded; re-render with the form intact
		return s.renderApartments(ctx, *form)
	}
	return ctx.Redirect(http.StatusSeeOther, "/apartments")
}

func (s *server) apartmentDelete(ctx echo.Context) error {
	_ = s.opts.Apartments.Delete(ctx.Request().Context(), ctx.Param("id"))
	return ctx.Redirect(http.StatusSeeOther, "/apartments")
}

// attachForm makes sure the clicked unit label is backed by a persisted
// record before the tenant form is ever shown against it.
func (s *server) attachForm(ctx echo.Context) error {
	apt, err := s.opts.Apartments.EnsureUnit(ctx.Request().Context(), ctx.Param("unit"))
	if err != nil {
		return ctx.Redirect(http.StatusSeeOther, "/apartments")
	}
	return ctx.Render(http.StatusOK, "attach.html", attachData{
		Page:      s.newPage("Add Tenant for " + apt.Unit),
		Apartment: apt,
	})
}

func (s *server) attachSubmit(ctx echo.Context) error {
	form := new(apartment.TenantForm)
	if err := ctx.Bind(form); err != nil {
		return err
	}
	unit := ctx.Param("unit")
	if err := s.opts.Apartments.Attach(ctx.Request().Context(), unit, *form); err != nil {
		apt, findErr := s.opts.Apartments.EnsureUnit(ctx.Request().Context(), unit)
		if findErr != nil {
			return ctx.Redirect(http.StatusSeeOther, "/apartments")
		}
		return ctx.Render(http.StatusOK, "attach.html", attachData{
			Page:      s.newPage("Add Tenant for " + apt.Unit),
			Apartment: apt,
			Form:      *form,
		})
	}
	return ctx.Redirect(http.StatusSeeOther, "/apartments")
}
