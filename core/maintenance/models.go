package maintenance

import (
	"github.com/volatiletech/null/v8"

	"github.com/Khadar01822/pms-dashboard/core"
)

// Statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusFixed      = "fixed"
)

// Reported-by origins
const (
	ReportedByTenant     = "tenant"
	ReportedByManagement = "management"
)

// StatusLabels maps wire statuses to display text.
var StatusLabels = map[string]string{
	StatusPending:    "Pending",
	StatusInProgress: "In Progress",
	StatusFixed:      "Completed",
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

	Request struct {
		ID           string        `json:"_id"`
		Tenant       *TenantRef    `json:"tenant,omitempty"`
		Apartment    *ApartmentRef `json:"apartment,omitempty"`
		Description  string        `json:"description"`
		Amount       null.Float64  `json:"amount"`
		Status       string        `json:"status"`
		ReportedBy   string        `json:"reportedBy"`
		DateReported null.Time     `json:"dateReported"`
	}

	// NewRequest is the add-request form. Apartment is derived from the
	// selected tenant's link, amount is an optional estimate.
	NewRequest struct {
		Tenant      string `json:"tenant" form:"tenant" validate:"required"`
		Apartment   string `json:"apartment" form:"apartment" validate:"required"`
		Description string `json:"description" form:"description" validate:"required"`
		Amount      string `json:"amount" form:"amount"`
		Status      string `json:"status" form:"status"`
		ReportedBy  string `json:"reportedBy" form:"reportedBy"`
	}
)

func (f *NewRequest) Validate() error {
	return core.Validate.Struct(f)
}

func (r Request) TenantName() string {
	if r.Tenant == nil {
		return "—"
	}
	return r.Tenant.Name
}

func (r Request) UnitLabel() string {
	if r.Apartment == nil {
		return "—"
	}
	return r.Apartment.Unit
}

func (r Request) StatusLabel() string {
	if label, ok := StatusLabels[r.Status]; ok {
		return label
	}
	return r.Status
}

func (r Request) AmountValue() float64 {
	return r.Amount.Float64
}

func (r Request) DateLabel() string {
	if !r.DateReported.Valid {
		return "—"
	}
	return r.DateReported.Time.Format("02/01/2006")
}
