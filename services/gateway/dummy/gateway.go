// Package dummygw is an in-memory stand-in for the REST backend, serving
// the same routes over process-local tables. It backs tests and local dev
// without a running API.
package dummygw

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Khadar01822/pms-dashboard/core"
)

type (
	apartmentDoc struct {
		ID     string
		Unit   string
		Floor  int
		Rent   float64
		Status string
	}

	tenantDoc struct {
		ID          string
		Name        string
		Phone       string
		Email       string
		IDNumber    string
		MoveInDate  time.Time
		ApartmentID string
	}

	paymentDoc struct {
		ID          string
		TenantID    string
		ApartmentID string
		Amount      float64
		Month       string
		Method      string
		DatePaid    time.Time
	}

	requestDoc struct {
		ID           string
		TenantID     string
		ApartmentID  string
		Description  string
		Amount       float64
		Status       string
		ReportedBy   string
		DateReported time.Time
	}

	// Call records one request issued through the gateway, for assertions
	// on how many and which calls an action produced.
	Call struct {
		Method string
		Path   string
	}

	Gateway struct {
		mu         sync.RWMutex
		apartments []*apartmentDoc
		tenants    []*tenantDoc
		payments   []*paymentDoc
		requests   []*requestDoc
		calls      []Call
		failures   map[string]*core.APIError
	}
)

var _ core.Gateway = (*Gateway)(nil)

func Open() *Gateway {
	return &Gateway{failures: make(map[string]*core.APIError)}
}

// Fail makes every subsequent call with this method and path return the
// given API error until ClearFailures.
func (g *Gateway) Fail(method, path string, status int, msg string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures[method+" "+path] = &core.APIError{Status: status, Message: msg}
}

func (g *Gateway) ClearFailures() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failures = make(map[string]*core.APIError)
}

func (g *Gateway) Calls() []Call {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Call, len(g.calls))
	copy(out, g.calls)
	return out
}

func (g *Gateway) ResetCalls() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = nil
}

// Seed helpers

func (g *Gateway) SeedApartment(unit string, floor int, rent float64, status string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	doc := &apartmentDoc{ID: uuid.NewString(), Unit: unit, Floor: floor, Rent: rent, Status: status}
	g.apartments = append(g.apartments, doc)
	return doc.ID
}

func (g *Gateway) SeedTenant(name, phone, email, idNumber string, moveIn time.Time, apartmentID string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	doc := &tenantDoc{
		ID: uuid.NewString(), Name: name, Phone: phone, Email: email,
		IDNumber: idNumber, MoveInDate: moveIn, ApartmentID: apartmentID,
	}
	g.tenants = append(g.tenants, doc)
	return doc.ID
}

func (g *Gateway) SeedPayment(tenantID, apartmentID string, amount float64, month, method string, datePaid time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	doc := &paymentDoc{
		ID: uuid.NewString(), TenantID: tenantID, ApartmentID: apartmentID,
		Amount: amount, Month: month, Method: method, DatePaid: datePaid,
	}
	g.payments = append(g.payments, doc)
	return doc.ID
}

func (g *Gateway) SeedRequest(tenantID, apartmentID, description string, amount float64, status, reportedBy string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	doc := &requestDoc{
		ID: uuid.NewString(), TenantID: tenantID, ApartmentID: apartmentID,
		Description: description, Amount: amount, Status: status,
		ReportedBy: reportedBy, DateReported: time.Now().UTC(),
	}
	g.requests = append(g.requests, doc)
	return doc.ID
}

// TenantFields exposes a stored tenant's contact fields, to observe what a
// partial workflow actually applied.
func (g *Gateway) TenantFields(id string) (name, phone, email, idNumber string, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, t := range g.tenants {
		if t.ID == id {
			return t.Name, t.Phone, t.Email, t.IDNumber, true
		}
	}
	return "", "", "", "", false
}

// ApartmentRent exposes a stored apartment's rent.
func (g *Gateway) ApartmentRent(id string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, a := range g.apartments {
		if a.ID == id {
			return a.Rent, true
		}
	}
	return 0, false
}

// core.Gateway implementation

func (g *Gateway) Get(ctx context.Context, path string, out interface{}) error {
	return g.do(http.MethodGet, path, nil, out)
}

func (g *Gateway) Post(ctx context.Context, path string, body, out interface{}) error {
	return g.do(http.MethodPost, path, body, out)
}

func (g *Gateway) Put(ctx context.Context, path string, body, out interface{}) error {
	return g.do(http.MethodPut, path, body, out)
}

func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.do(http.MethodDelete, path, nil, nil)
}

func (g *Gateway) do(method, path string, body, out interface{}) error {
	g.mu.Lock()
	g.calls = append(g.calls, Call{Method: method, Path: path})
	failure := g.failures[method+" "+path]
	g.mu.Unlock()

	if failure != nil {
		return failure
	}

	var raw []byte
	if body != nil {
		var err error
		if raw, err = json.Marshal(body); err != nil {
			return errors.Wrap(err, "marshaling request body")
		}
	}

	result, err := g.route(method, path, raw)
	if err != nil {
		return err
	}
	if out == nil || result == nil {
		return nil
	}
	data, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "marshaling response body")
	}
	return errors.Wrap(json.Unmarshal(data, out), "decoding response body")
}

func (g *Gateway) route(method, path string, body []byte) (interface{}, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	segs := strings.Split(strings.Trim(path, "/"), "/")
	switch segs[0] {
	case "apartments":
		return g.routeApartments(method, segs, body)
	case "tenants":
		return g.routeTenants(method, segs, body)
	case "payments":
		return g.routePayments(method, segs, body)
	case "maintenance":
		return g.routeMaintenance(method, segs, body)
	case "dashboard":
		return g.routeDashboard(method, segs)
	}
	return nil, &core.APIError{Status: http.StatusNotFound}
}
