package tenant

import (
	"github.com/volatiletech/null/v8"

	"github.com/Khadar01822/pms-dashboard/core"
)

type (
	// ApartmentRef is the linked apartment as resolved/embedded on read.
	ApartmentRef struct {
		ID     string  `json:"_id"`
		Unit   string  `json:"unit"`
		Rent   float64 `json:"rent"`
		Status string  `json:"status"`
	}

	Tenant struct {
		ID         string        `json:"_id"`
		Name       string        `json:"name"`
		Phone      string        `json:"phone"`
		Email      string        `json:"email"`
		IDNumber   string        `json:"idNumber"`
		MoveInDate null.Time     `json:"moveInDate"`
		Apartment  *ApartmentRef `json:"apartment,omitempty"`
	}

	// UpdateTenant is the edit form. Rent rides along and, when set, is
	// synced to the linked apartment in a second write.
	UpdateTenant struct {
		Name     string `json:"name" form:"name" validate:"required"`
		Phone    string `json:"phone" form:"phone" validate:"required"`
		Email    string `json:"email" form:"email"`
		IDNumber string `json:"idNumber" form:"idNumber" validate:"required"`
		Rent     string `json:"rent" form:"rent"`
	}
)

func (f *UpdateTenant) Validate() error {
	return core.Validate.Struct(f)
}

func (t Tenant) UnitLabel() string {
	if t.Apartment == nil {
		return "—"
	}
	return t.Apartment.Unit
}

func (t Tenant) RentValue() float64 {
	if t.Apartment == nil {
		return 0
	}
	return t.Apartment.Rent
}

func (t Tenant) MoveInLabel() string {
	if !t.MoveInDate.Valid {
		return "—"
	}
	return t.MoveInDate.Time.Format("02/01/2006")
}
