package payment

import (
	"strconv"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/Khadar01822/pms-dashboard/core"
)

// Payment methods
const (
	MethodCash  = "cash"
	MethodMpesa = "mpesa"
	MethodBank  = "bank"
)

// Methods lists the selectable payment methods with display labels.
var Methods = []struct{ Value, Label string }{
	{MethodCash, "Cash"},
	{MethodMpesa, "M-Pesa"},
	{MethodBank, "Bank Transfer"},
}

type (
	TenantRef struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}

	ApartmentRef struct {
		ID   string `json:"_id"`
		Unit string `json:"unit"`
	}

	Payment struct {
		ID            string        `json:"_id"`
		Tenant        *TenantRef    `json:"tenant,omitempty"`
		Apartment     *ApartmentRef `json:"apartment,omitempty"`
		Amount        float64       `json:"amount"`
		Month         string        `json:"month"`
		PaymentMethod string        `json:"paymentMethod"`
		DatePaid      null.Time     `json:"datePaid"`
	}

	// NewPayment is the record-payment form. Month is a free-text label
	// (e.g. "October 2025"), not a strict date.
	NewPayment struct {
		Amount        string `json:"amount" form:"amount" validate:"required"`
		Month         string `json:"month" form:"month" validate:"required"`
		PaymentMethod string `json:"paymentMethod" form:"paymentMethod" validate:"required"`
		DatePaid      string `json:"datePaid" form:"datePaid"`
	}
)

func (f *NewPayment) Validate() error {
	return core.Validate.Struct(f)
}

func (p Payment) TenantName() string {
	if p.Tenant == nil {
		return "—"
	}
	return p.Tenant.Name
}

func (p Payment) UnitLabel() string {
	if p.Apartment == nil {
		return "—"
	}
	return p.Apartment.Unit
}

// DateLabel formats the payment date, degrading to a dash when the server
// sent none.
func (p Payment) DateLabel() string {
	if !p.DatePaid.Valid {
		return "—"
	}
	return p.DatePaid.Time.Format("02/01/2006")
}

// DefaultForm seeds the record-payment form for a tenant: amount from the
// linked rent, date paid today.
func DefaultForm(rent float64, now time.Time) NewPayment {
	form := NewPayment{
		PaymentMethod: MethodCash,
		DatePaid:      now.Format("2006-01-02"),
	}
	if rent > 0 {
		form.Amount = strconv.FormatFloat(rent, 'f', -1, 64)
	}
	return form
}
