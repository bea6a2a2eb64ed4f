package payment

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/Khadar01822/pms-dashboard/core"
	"github.com/Khadar01822/pms-dashboard/core/tenant"
)

type (
	createPayload struct {
		Tenant        string    `json:"tenant"`
		Apartment     string    `json:"apartment,omitempty"`
		Amount        float64   `json:"amount"`
		Month         string    `json:"month"`
		PaymentMethod string    `json:"paymentMethod"`
		DatePaid      time.Time `json:"datePaid"`
	}

	// Service holds the payments view: the tenant list payments are
	// recorded against and the recorded payments themselves.
	Service struct {
		mu       sync.RWMutex
		gw       core.Gateway
		notif    core.Notifier
		tenants  []tenant.Tenant
		payments []Payment
	}
)

func NewService(gw core.Gateway, notif core.Notifier) *Service {
	return &Service{gw: gw, notif: notif}
}

// Refresh fetches tenants and payments; the two calls fail independently.
func (svc *Service) Refresh(ctx context.Context) error {
	var firstErr error

	var tenants []tenant.Tenant
	if err := svc.gw.Get(ctx, "/tenants", &tenants); err != nil {
		svc.notif.Error("Failed to load tenants")
		firstErr = err
	} else {
		svc.mu.Lock()
		svc.tenants = tenants
		svc.mu.Unlock()
	}

	var payments []Payment
	if err := svc.gw.Get(ctx, "/payments", &payments); err != nil {
		svc.notif.Error("Failed to load payments")
		if firstErr == nil {
			firstErr = err
		}
	} else {
		svc.mu.Lock()
		svc.payments = payments
		svc.mu.Unlock()
	}
	return firstErr
}

func (svc *Service) Tenants() []tenant.Tenant {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	out := make([]tenant.Tenant, len(svc.tenants))
	copy(out, svc.tenants)
	return out
}

func (svc *Service) Payments() []Payment {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	out := make([]Payment, len(svc.payments))
	copy(out, svc.payments)
	return out
}

func (svc *Service) Tenant(id string) (tenant.Tenant, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	for _, t := range svc.tenants {
		if t.ID == id {
			return t, nil
		}
	}
	return tenant.Tenant{}, tenant.ErrNotFound
}

// Record persists a payment against the given tenant and re-fetches the
// payment list on success.
func (svc *Service) Record(ctx context.Context, tnt tenant.Tenant, form NewPayment) error {
	if err := form.Validate(); err != nil {
		svc.notif.Error("Please fill all fields")
		return err
	}
	amount, err := strconv.ParseFloat(core.CleanString(form.Amount), 64)
	if err != nil {
		svc.notif.Error("Please fill all fields")
		return core.NewValidationError(err, core.FieldError{Field: "amount", Error: "must be a number"})
	}

	datePaid := time.Now().UTC()
	if form.DatePaid != "" {
		if d, err := time.Parse("2006-01-02", form.DatePaid); err == nil {
			datePaid = d
		}
	}

	payload := createPayload{
		Tenant:        tnt.ID,
		Amount:        amount,
		Month:         core.CleanString(form.Month),
		PaymentMethod: form.PaymentMethod,
		DatePaid:      datePaid,
	}
	if tnt.Apartment != nil {
		payload.Apartment = tnt.Apartment.ID
	}

	if err := svc.gw.Post(ctx, "/payments", payload, nil); err != nil {
		core.NotifyError(svc.notif, err, "Failed to record payment")
		return err
	}

	svc.notif.Success("Payment recorded successfully!")

	var payments []Payment
	if err := svc.gw.Get(ctx, "/payments", &payments); err != nil {
		svc.notif.Error("Failed to load payments")
		return nil // the record itself succeeded
	}
	svc.mu.Lock()
	svc.payments = payments
	svc.mu.Unlock()
	return nil
}
