package echoweb

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Khadar01822/pms-dashboard/core/payment"
	"github.com/Khadar01822/pms-dashboard/core/tenant"
)

type paymentsData struct {
	Page
	Tenants  []tenant.Tenant
	Payments []payment.Payment
	Methods  []struct{ Value, Label string }
	Forms    map[string]payment.NewPayment
}

func (s *server) paymentsPage(ctx echo.Context) error {
	_ = s.opts.Payments.Refresh(ctx.Request().Context())

	// each tenant's record form starts from their linked rent and today
	tenants := s.opts.Payments.Tenants()
	now := time.Now()
	forms := make(map[string]payment.NewPayment, len(tenants))
	for _, t := range tenants {
		forms[t.ID] = payment.DefaultForm(t.RentValue(), now)
	}

	return ctx.Render(http.StatusOK, "payments.html", paymentsData{
		Page:     s.newPage("Payments"),
		Tenants:  tenants,
		Payments: s.opts.Payments.Payments(),
		Methods:  payment.Methods,
		Forms:    forms,
	})
}

func (s *server) paymentRecord(ctx echo.Context) error {
	tnt, err := s.opts.Payments.Tenant(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "tenant not found")
	}
	form := new(payment.NewPayment)
	if err := ctx.Bind(form); err != nil {
		return err
	}
	_ = s.opts.Payments.Record(ctx.Request().Context(), tnt, *form)
	return ctx.Redirect(http.StatusSeeOther, "/payments")
}
