package apartment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/Khadar01822/pms-dashboard/core"
)

var ErrNotPersisted = errors.New("apartment has no backing record")

type (
	createPayload struct {
		Unit   string  `json:"unit"`
		Floor  int     `json:"floor"`
		Rent   float64 `json:"rent"`
		Status string  `json:"status"`
	}

	attachPayload struct {
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		Email      string `json:"email"`
		IDNumber   string `json:"idNumber"`
		MoveInDate string `json:"moveInDate"`
	}

	// Service holds the apartments view: the fetched collection and the
	// actions mutating it. State is only ever patched by the view's own
	// handlers after a successful call.
	Service struct {
		mu         sync.RWMutex
		gw         core.Gateway
		notif      core.Notifier
		units      []string
		apartments []Apartment
	}
)

func NewService(gw core.Gateway, notif core.Notifier) *Service {
	return &Service{gw: gw, notif: notif, units: DefaultUnits}
}

// Refresh fetches the full collection and replaces local state.
func (svc *Service) Refresh(ctx context.Context) error {
	var apts []Apartment
	if err := svc.gw.Get(ctx, "/apartments", &apts); err != nil {
		svc.notif.Error("Failed to fetch apartments")
		return err
	}
	svc.mu.Lock()
	svc.apartments = apts
	svc.mu.Unlock()
	return nil
}

func (svc *Service) Apartments() []Apartment {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	out := make([]Apartment, len(svc.apartments))
	copy(out, svc.apartments)
	return out
}

// Cards overlays the fixed unit catalog on a snapshot of the fetched
// collection. The overlay must not alias svc.apartments: Delete shifts that
// slice in place while renders may still be walking the cards.
func (svc *Service) Cards() []UnitCard {
	return Overlay(svc.units, svc.Apartments())
}

func (svc *Service) find(unit string) (Apartment, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	for _, apt := range svc.apartments {
		if apt.Unit == unit {
			return apt, true
		}
	}
	return Apartment{}, false
}

// Create validates the add-unit form and persists a new unit. The created
// record is appended to local state on success.
func (svc *Service) Create(ctx context.Context, form NewApartment) (Apartment, error) {
	if err := form.Validate(); err != nil {
		svc.notif.Error("Please fill in all fields")
		return Apartment{}, err
	}
	floor, err := strconv.Atoi(core.CleanString(form.Floor))
	if err != nil {
		svc.notif.Error("Please fill in all fields")
		return Apartment{}, core.NewValidationError(err, core.FieldError{Field: "floor", Error: "must be a number"})
	}
	rent, err := strconv.ParseFloat(core.CleanString(form.Rent), 64)
	if err != nil {
		svc.notif.Error("Please fill in all fields")
		return Apartment{}, core.NewValidationError(err, core.FieldError{Field: "rent", Error: "must be a number"})
	}

	payload := createPayload{
		Unit:   core.CleanString(form.Unit, true /* upper */),
		Floor:  floor,
		Rent:   rent,
		Status: form.Status,
	}
	var apt Apartment
	if err := svc.gw.Post(ctx, "/apartments", payload, &apt); err != nil {
		core.NotifyError(svc.notif, err, "Failed to add unit")
		return Apartment{}, err
	}

	svc.mu.Lock()
	svc.apartments = append(svc.apartments, apt)
	svc.mu.Unlock()
	svc.notif.Success("Unit added successfully")
	return apt, nil
}

// Delete removes the unit with the given id. On failure the record stays in
// local state.
func (svc *Service) Delete(ctx context.Context, id string) error {
	if err := svc.gw.Delete(ctx, "/apartments/"+id); err != nil {
		core.NotifyError(svc.notif, err, "Delete failed")
		return err
	}
	svc.mu.Lock()
	for i, apt := range svc.apartments {
		if apt.ID == id {
			svc.apartments = append(svc.apartments[:i], svc.apartments[i+1:]...)
			break
		}
	}
	svc.mu.Unlock()
	svc.notif.Success("Unit deleted")
	return nil
}

// EnsureUnit returns the persisted record backing the given label, creating
// one with default fields (floor 1, rent 0, vacant) when none exists yet.
// The attach form must only ever be shown against the record this returns;
// a create failure aborts the workflow before any attach can happen.
func (svc *Service) EnsureUnit(ctx context.Context, label string) (Apartment, error) {
	if apt, ok := svc.find(label); ok {
		return apt, nil
	}

	payload := createPayload{Unit: label, Floor: 1, Rent: 0, Status: StatusVacant}
	var apt Apartment
	if err := svc.gw.Post(ctx, "/apartments", payload, &apt); err != nil {
		core.NotifyError(svc.notif, err, "Failed to prepare tenant form")
		return Apartment{}, err
	}

	svc.mu.Lock()
	svc.apartments = append(svc.apartments, apt)
	svc.mu.Unlock()
	svc.notif.Info(fmt.Sprintf("Created new unit %s", apt.Unit))
	return apt, nil
}

// AttachTenant submits the tenant-attachment form against a persisted unit.
// The server creates or replaces the embedded tenant association.
func (svc *Service) AttachTenant(ctx context.Context, id string, form TenantForm) error {
	if id == "" {
		svc.notif.Error("Apartment not found")
		return ErrNotPersisted
	}
	if err := form.Validate(); err != nil {
		svc.notif.Error("Please fill all tenant details")
		return err
	}

	payload := attachPayload{
		Name:       core.CleanString(form.Name),
		Phone:      core.CleanString(form.Phone),
		Email:      core.CleanString(form.Email),
		IDNumber:   core.CleanString(form.IDNumber),
		MoveInDate: form.MoveInDate,
	}
	if err := svc.gw.Put(ctx, "/apartments/"+id+"/tenant", payload, nil); err != nil {
		core.NotifyError(svc.notif, err, "Failed to add tenant")
		return err
	}
	svc.notif.Success("Tenant added successfully")
	return svc.Refresh(ctx)
}

// Attach runs the full linking workflow for a unit label: ensure a
// persisted record exists, then attach the tenant to it.
func (svc *Service) Attach(ctx context.Context, label string, form TenantForm) error {
	apt, err := svc.EnsureUnit(ctx, label)
	if err != nil {
		return err
	}
	return svc.AttachTenant(ctx, apt.ID, form)
}
