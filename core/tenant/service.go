package tenant

import (
	"context"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/Khadar01822/pms-dashboard/core"
)

var ErrNotFound = errors.New("tenant not found")

type (
	updatePayload struct {
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
		IDNumber string `json:"idNumber"`
	}

	rentPayload struct {
		Rent float64 `json:"rent"`
	}

	// Service holds the tenants view state and its actions.
	Service struct {
		mu      sync.RWMutex
		gw      core.Gateway
		notif   core.Notifier
		tenants []Tenant
	}
)

func NewService(gw core.Gateway, notif core.Notifier) *Service {
	return &Service{gw: gw, notif: notif}
}

func (svc *Service) Refresh(ctx context.Context) error {
	var tenants []Tenant
	if err := svc.gw.Get(ctx, "/tenants", &tenants); err != nil {
		svc.notif.Error("Failed to load tenants")
		return err
	}
	svc.mu.Lock()
	svc.tenants = tenants
	svc.mu.Unlock()
	return nil
}

func (svc *Service) Tenants() []Tenant {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	out := make([]Tenant, len(svc.tenants))
	copy(out, svc.tenants)
	return out
}

func (svc *Service) Get(id string) (Tenant, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	for _, t := range svc.tenants {
		if t.ID == id {
			return t, nil
		}
	}
	return Tenant{}, ErrNotFound
}

// Update saves the edit form in two sequential writes: the tenant's contact
// fields first, then the linked apartment's rent when one is linked and a
// rent value was provided. The two writes are not transactional; the tagged
// outcome tells the caller exactly which half failed so only that half
// needs retrying.
func (svc *Service) Update(ctx context.Context, id string, form UpdateTenant) (core.TwoStepOutcome, error) {
	if err := form.Validate(); err != nil {
		svc.notif.Error("Please fill in all fields")
		return core.FirstFailed, err
	}

	tnt, err := svc.Get(id)
	if err != nil {
		svc.notif.Error("Tenant not found")
		return core.FirstFailed, err
	}

	payload := updatePayload{
		Name:     core.CleanString(form.Name),
		Phone:    core.CleanString(form.Phone),
		Email:    core.CleanString(form.Email),
		IDNumber: core.CleanString(form.IDNumber),
	}
	if err := svc.gw.Put(ctx, "/tenants/"+id, payload, nil); err != nil {
		core.NotifyError(svc.notif, err, "Update failed")
		return core.FirstFailed, err
	}

	if tnt.Apartment != nil && form.Rent != "" {
		rent, convErr := strconv.ParseFloat(core.CleanString(form.Rent), 64)
		if convErr != nil {
			svc.notif.Error("Tenant updated but rent change failed")
			return core.SecondFailedAfterFirst, core.NewValidationError(convErr, core.FieldError{Field: "rent", Error: "must be a number"})
		}
		if err := svc.gw.Put(ctx, "/apartments/"+tnt.Apartment.ID, rentPayload{Rent: rent}, nil); err != nil {
			svc.notif.Error("Tenant updated but rent change failed")
			return core.SecondFailedAfterFirst, err
		}
	}

	svc.notif.Success("Tenant and rent updated successfully")
	return core.BothApplied, svc.Refresh(ctx)
}

// Delete removes the tenant and re-fetches the collection. On failure the
// record stays put.
func (svc *Service) Delete(ctx context.Context, id string) error {
	if err := svc.gw.Delete(ctx, "/tenants/"+id); err != nil {
		core.NotifyError(svc.notif, err, "Delete failed")
		return err
	}
	svc.notif.Success("Tenant removed")
	return svc.Refresh(ctx)
}
