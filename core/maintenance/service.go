package maintenance

import (
	"context"
	"strconv"
	"sync"

	"github.com/Khadar01822/pms-dashboard/core"
	"github.com/Khadar01822/pms-dashboard/core/tenant"
)

type (
	createPayload struct {
		Tenant      string  `json:"tenant"`
		Apartment   string  `json:"apartment"`
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
		Status      string  `json:"status"`
		ReportedBy  string  `json:"reportedBy"`
	}

	statusPayload struct {
		Status string `json:"status"`
	}

	// Service holds the maintenance view: active and completed request
	// lists plus the tenant list the add-request form selects from.
	Service struct {
		mu        sync.RWMutex
		gw        core.Gateway
		notif     core.Notifier
		active    []Request
		completed []Request
		tenants   []tenant.Tenant
		loading   bool
	}
)

func NewService(gw core.Gateway, notif core.Notifier) *Service {
	return &Service{gw: gw, notif: notif}
}

// RefreshActive fetches the active request list, flagging the view as
// loading while the call is in flight.
func (svc *Service) RefreshActive(ctx context.Context) error {
	svc.mu.Lock()
	svc.loading = true
	svc.mu.Unlock()
	defer func() {
		svc.mu.Lock()
		svc.loading = false
		svc.mu.Unlock()
	}()

	var active []Request
	if err := svc.gw.Get(ctx, "/maintenance/active", &active); err != nil {
		svc.notif.Error("Failed to load active maintenance")
		return err
	}
	svc.mu.Lock()
	svc.active = active
	svc.mu.Unlock()
	return nil
}

func (svc *Service) RefreshCompleted(ctx context.Context) error {
	var completed []Request
	if err := svc.gw.Get(ctx, "/maintenance/completed", &completed); err != nil {
		svc.notif.Error("Failed to load completed maintenance")
		return err
	}
	svc.mu.Lock()
	svc.completed = completed
	svc.mu.Unlock()
	return nil
}

func (svc *Service) RefreshTenants(ctx context.Context) error {
	var tenants []tenant.Tenant
	if err := svc.gw.Get(ctx, "/tenants", &tenants); err != nil {
		svc.notif.Error("Failed to load tenants")
		return err
	}
	svc.mu.Lock()
	svc.tenants = tenants
	svc.mu.Unlock()
	return nil
}

// RefreshAll re-fetches both request lists. Each call fails independently.
func (svc *Service) RefreshAll(ctx context.Context) {
	_ = svc.RefreshActive(ctx)
	_ = svc.RefreshCompleted(ctx)
}

func (svc *Service) Active() []Request {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	out := make([]Request, len(svc.active))
	copy(out, svc.active)
	return out
}

func (svc *Service) Completed() []Request {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	out := make([]Request, len(svc.completed))
	copy(out, svc.completed)
	return out
}

func (svc *Service) Tenants() []tenant.Tenant {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	out := make([]tenant.Tenant, len(svc.tenants))
	copy(out, svc.tenants)
	return out
}

func (svc *Service) Loading() bool {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.loading
}

// Create saves a new request and re-fetches both lists on success.
func (svc *Service) Create(ctx context.Context, form NewRequest) error {
	if err := form.Validate(); err != nil {
		svc.notif.Error("Please select tenant, apartment and describe the issue")
		return err
	}

	amount := 0.0
	if form.Amount != "" {
		if a, err := strconv.ParseFloat(core.CleanString(form.Amount), 64); err == nil {
			amount = a
		}
	}
	status := form.Status
	if status == "" {
		status = StatusPending
	}
	reportedBy := form.ReportedBy
	if reportedBy == "" {
		reportedBy = ReportedByTenant
	}

	payload := createPayload{
		Tenant:      form.Tenant,
		Apartment:   form.Apartment,
		Description: core.CleanString(form.Description),
		Amount:      amount,
		Status:      status,
		ReportedBy:  reportedBy,
	}
	if err := svc.gw.Post(ctx, "/maintenance", payload, nil); err != nil {
		core.NotifyError(svc.notif, err, "Failed to save maintenance request")
		return err
	}

	svc.notif.Success("Maintenance request saved!")
	svc.RefreshAll(ctx)
	return nil
}

// SetStatus changes a request's status and re-fetches both lists. Repeating
// the same change is harmless; the server and the refreshed lists settle on
// the same state.
func (svc *Service) SetStatus(ctx context.Context, id, status string) error {
	if err := svc.gw.Put(ctx, "/maintenance/"+id, statusPayload{Status: status}, nil); err != nil {
		core.NotifyError(svc.notif, err, "Failed to update status")
		return err
	}
	svc.notif.Info("Status updated")
	svc.RefreshAll(ctx)
	return nil
}
