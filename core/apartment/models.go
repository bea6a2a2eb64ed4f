package apartment

import (
	"fmt"

	"github.com/volatiletech/null/v8"

	"github.com/Khadar01822/pms-dashboard/core"
)

// Statuses
const (
	StatusVacant   = "vacant"
	StatusOccupied = "occupied"
)

// DefaultUnits is the fixed catalog of unit labels the apartments view
// renders, in display order. It is a UI convenience independent of what the
// backend actually holds; labels with no backing record render placeholders.
var DefaultUnits = []string{"1A", "1B", "2A", "2B", "3A", "3B"}

type (
	// TenantInfo is the tenant summary the backend embeds on an occupied unit.
	TenantInfo struct {
		Name       string      `json:"name"`
		Phone      null.String `json:"phone"`
		Email      null.String `json:"email"`
		IDNumber   null.String `json:"idNumber"`
		MoveInDate null.Time   `json:"moveInDate"`
	}

	Apartment struct {
		ID     string      `json:"_id"`
		Unit   string      `json:"unit"`
		Floor  int         `json:"floor"`
		Rent   float64     `json:"rent"`
		Status string      `json:"status"`
		Tenant *TenantInfo `json:"tenant,omitempty"`
	}

	// NewApartment is the add-unit form. Fields arrive as strings and are
	// only checked for presence before submission; numeric conversion
	// happens when the payload is built.
	NewApartment struct {
		Unit   string `json:"unit" form:"unit" validate:"required"`
		Floor  string `json:"floor" form:"floor" validate:"required"`
		Rent   string `json:"rent" form:"rent" validate:"required"`
		Status string `json:"status" form:"status" validate:"required"`
	}

	// TenantForm is the attach-tenant form shown against a persisted unit.
	TenantForm struct {
		Name       string `json:"name" form:"name" validate:"required"`
		Phone      string `json:"phone" form:"phone" validate:"required"`
		Email      string `json:"email" form:"email"`
		IDNumber   string `json:"idNumber" form:"idNumber" validate:"required"`
		MoveInDate string `json:"moveInDate" form:"moveInDate" validate:"required"`
	}

	// UnitCard is one entry of the catalog overlay: a label from
	// DefaultUnits plus the matching record, if any.
	UnitCard struct {
		Unit      string
		Apartment *Apartment
	}
)

func (f *NewApartment) Validate() error {
	return core.Validate.Struct(f)
}

func (f *TenantForm) Validate() error {
	return core.Validate.Struct(f)
}

// Overlay left-joins the unit catalog and the fetched records, keyed by
// unit label, preserving catalog order.
func Overlay(units []string, apts []Apartment) []UnitCard {
	byUnit := make(map[string]*Apartment, len(apts))
	for i := range apts {
		byUnit[apts[i].Unit] = &apts[i]
	}
	cards := make([]UnitCard, 0, len(units))
	for _, u := range units {
		cards = append(cards, UnitCard{Unit: u, Apartment: byUnit[u]})
	}
	return cards
}

// Display helpers for labels with no backing record.

func (c UnitCard) FloorLabel() string {
	if c.Apartment == nil {
		return "—"
	}
	return fmt.Sprintf("%d", c.Apartment.Floor)
}

func (c UnitCard) RentLabel() string {
	if c.Apartment == nil || c.Apartment.Rent == 0 {
		return "—"
	}
	return fmt.Sprintf("%v", c.Apartment.Rent)
}

func (c UnitCard) StatusLabel() string {
	if c.Apartment == nil {
		return "Not Set"
	}
	return c.Apartment.Status
}

func (c UnitCard) TenantName() string {
	if c.Apartment == nil || c.Apartment.Tenant == nil {
		return ""
	}
	return c.Apartment.Tenant.Name
}
