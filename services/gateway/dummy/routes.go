package dummygw

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Khadar01822/pms-dashboard/core"
)

// Wire shapes mirroring what the backend serves, refs resolved/embedded.
type (
	tenantInfoJSON struct {
		Name       string     `json:"name"`
		Phone      string     `json:"phone"`
		Email      string     `json:"email"`
		IDNumber   string     `json:"idNumber"`
		MoveInDate *time.Time `json:"moveInDate,omitempty"`
	}

	apartmentJSON struct {
		ID     string          `json:"_id"`
		Unit   string          `json:"unit"`
		Floor  int             `json:"floor"`
		Rent   float64         `json:"rent"`
		Status string          `json:"status"`
		Tenant *tenantInfoJSON `json:"tenant,omitempty"`
	}

	apartmentRefJSON struct {
		ID     string  `json:"_id"`
		Unit   string  `json:"unit"`
		Rent   float64 `json:"rent"`
		Status string  `json:"status"`
	}

	tenantJSON struct {
		ID         string            `json:"_id"`
		Name       string            `json:"name"`
		Phone      string            `json:"phone"`
		Email      string            `json:"email"`
		IDNumber   string            `json:"idNumber"`
		MoveInDate *time.Time        `json:"moveInDate,omitempty"`
		Apartment  *apartmentRefJSON `json:"apartment,omitempty"`
	}

	refJSON struct {
		ID   string `json:"_id"`
		Name string `json:"name,omitempty"`
		Unit string `json:"unit,omitempty"`
	}

	paymentJSON struct {
		ID            string    `json:"_id"`
		Tenant        *refJSON  `json:"tenant,omitempty"`
		Apartment     *refJSON  `json:"apartment,omitempty"`
		Amount        float64   `json:"amount"`
		Month         string    `json:"month"`
		PaymentMethod string    `json:"paymentMethod"`
		DatePaid      time.Time `json:"datePaid"`
	}

	requestJSON struct {
		ID           string    `json:"_id"`
		Tenant       *refJSON  `json:"tenant,omitempty"`
		Apartment    *refJSON  `json:"apartment,omitempty"`
		Description  string    `json:"description"`
		Amount       float64   `json:"amount"`
		Status       string    `json:"status"`
		ReportedBy   string    `json:"reportedBy"`
		DateReported time.Time `json:"dateReported"`
	}
)

var errNotFound = &core.APIError{Status: http.StatusNotFound, Message: "not found"}

func badRequest(msg string) error {
	return &core.APIError{Status: http.StatusBadRequest, Message: msg}
}

// callers hold g.mu

func (g *Gateway) apartmentByID(id string) *apartmentDoc {
	for _, a := range g.apartments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (g *Gateway) tenantByID(id string) *tenantDoc {
	for _, t := range g.tenants {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (g *Gateway) tenantByApartment(apartmentID string) *tenantDoc {
	for _, t := range g.tenants {
		if t.ApartmentID == apartmentID {
			return t
		}
	}
	return nil
}

func (g *Gateway) renderApartment(a *apartmentDoc) apartmentJSON {
	out := apartmentJSON{ID: a.ID, Unit: a.Unit, Floor: a.Floor, Rent: a.Rent, Status: a.Status}
	if t := g.tenantByApartment(a.ID); t != nil {
		info := &tenantInfoJSON{Name: t.Name, Phone: t.Phone, Email: t.Email, IDNumber: t.IDNumber}
		if !t.MoveInDate.IsZero() {
			moveIn := t.MoveInDate
			info.MoveInDate = &moveIn
		}
		out.Tenant = info
	}
	return out
}

func (g *Gateway) renderTenant(t *tenantDoc) tenantJSON {
	out := tenantJSON{ID: t.ID, Name: t.Name, Phone: t.Phone, Email: t.Email, IDNumber: t.IDNumber}
	if !t.MoveInDate.IsZero() {
		moveIn := t.MoveInDate
		out.MoveInDate = &moveIn
	}
	if a := g.apartmentByID(t.ApartmentID); a != nil {
		out.Apartment = &apartmentRefJSON{ID: a.ID, Unit: a.Unit, Rent: a.Rent, Status: a.Status}
	}
	return out
}

func (g *Gateway) tenantRef(id string) *refJSON {
	if t := g.tenantByID(id); t != nil {
		return &refJSON{ID: t.ID, Name: t.Name}
	}
	return nil
}

func (g *Gateway) apartmentRef(id string) *refJSON {
	if a := g.apartmentByID(id); a != nil {
		return &refJSON{ID: a.ID, Unit: a.Unit}
	}
	return nil
}

func (g *Gateway) routeApartments(method string, segs []string, body []byte) (interface{}, error) {
	switch {
	case method == http.MethodGet && len(segs) == 1:
		out := make([]apartmentJSON, 0, len(g.apartments))
		for _, a := range g.apartments {
			out = append(out, g.renderApartment(a))
		}
		return out, nil

	case method == http.MethodPost && len(segs) == 1:
		var in struct {
			Unit   string  `json:"unit"`
			Floor  int     `json:"floor"`
			Rent   float64 `json:"rent"`
			Status string  `json:"status"`
		}
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, badRequest("invalid apartment payload")
		}
		if in.Unit == "" {
			return nil, badRequest("unit is required")
		}
		doc := &apartmentDoc{ID: uuid.NewString(), Unit: in.Unit, Floor: in.Floor, Rent: in.Rent, Status: in.Status}
		g.apartments = append(g.apartments, doc)
		return g.renderApartment(doc), nil

	case method == http.MethodPut && len(segs) == 2:
		doc := g.apartmentByID(segs[1])
		if doc == nil {
			return nil, errNotFound
		}
		var in struct {
			Unit   *string  `json:"unit"`
			Floor  *int     `json:"floor"`
			Rent   *float64 `json:"rent"`
			Status *string  `json:"status"`
		}
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, badRequest("invalid apartment payload")
		}
		if in.Unit != nil {
			doc.Unit = *in.Unit
		}
		if in.Floor != nil {
			doc.Floor = *in.Floor
		}
		if in.Rent != nil {
			doc.Rent = *in.Rent
		}
		if in.Status != nil {
			doc.Status = *in.Status
		}
		return g.renderApartment(doc), nil

	case method == http.MethodPut && len(segs) == 3 && segs[2] == "tenant":
		doc := g.apartmentByID(segs[1])
		if doc == nil {
			return nil, errNotFound
		}
		var in struct {
			Name       string `json:"name"`
			Phone      string `json:"phone"`
			Email      string `json:"email"`
			IDNumber   string `json:"idNumber"`
			MoveInDate string `json:"moveInDate"`
		}
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, badRequest("invalid tenant payload")
		}
		moveIn, _ := time.Parse("2006-01-02", in.MoveInDate)

		tnt := g.tenantByApartment(doc.ID)
		if tnt == nil {
			tnt = &tenantDoc{ID: uuid.NewString(), ApartmentID: doc.ID}
			g.tenants = append(g.tenants, tnt)
		}
		tnt.Name, tnt.Phone, tnt.Email, tnt.IDNumber, tnt.MoveInDate = in.Name, in.Phone, in.Email, in.IDNumber, moveIn
		doc.Status = "occupied"
		return g.renderApartment(doc), nil

	case method == http.MethodDelete && len(segs) == 2:
		for i, a := range g.apartments {
			if a.ID == segs[1] {
				g.apartments = append(g.apartments[:i], g.apartments[i+1:]...)
				return nil, nil
			}
		}
		return nil, errNotFound
	}
	return nil, errNotFound
}

func (g *Gateway) routeTenants(method string, segs []string, body []byte) (interface{}, error) {
	switch {
	case method == http.MethodGet && len(segs) == 1:
		out := make([]tenantJSON, 0, len(g.tenants))
		for _, t := range g.tenants {
			out = append(out, g.renderTenant(t))
		}
		return out, nil

	case method == http.MethodPut && len(segs) == 2:
		doc := g.tenantByID(segs[1])
		if doc == nil {
			return nil, errNotFound
		}
		var in struct {
			Name     *string `json:"name"`
			Phone    *string `json:"phone"`
			Email    *string `json:"email"`
			IDNumber *string `json:"idNumber"`
		}
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, badRequest("invalid tenant payload")
		}
		if in.Name != nil {
			doc.Name = *in.Name
		}
		if in.Phone != nil {
			doc.Phone = *in.Phone
		}
		if in.Email != nil {
			doc.Email = *in.Email
		}
		if in.IDNumber != nil {
			doc.IDNumber = *in.IDNumber
		}
		return g.renderTenant(doc), nil

	case method == http.MethodDelete && len(segs) == 2:
		for i, t := range g.tenants {
			if t.ID == segs[1] {
				g.tenants = append(g.tenants[:i], g.tenants[i+1:]...)
				return nil, nil
			}
		}
		return nil, errNotFound
	}
	return nil, errNotFound
}

func (g *Gateway) routePayments(method string, segs []string, body []byte) (interface{}, error) {
	switch {
	case method == http.MethodGet && len(segs) == 1:
		out := make([]paymentJSON, 0, len(g.payments))
		for _, p := range g.payments {
			out = append(out, paymentJSON{
				ID: p.ID, Tenant: g.tenantRef(p.TenantID), Apartment: g.apartmentRef(p.ApartmentID),
				Amount: p.Amount, Month: p.Month, PaymentMethod: p.Method, DatePaid: p.DatePaid,
			})
		}
		return out, nil

	case method == http.MethodPost && len(segs) == 1:
		var in struct {
			Tenant        string    `json:"tenant"`
			Apartment     string    `json:"apartment"`
			Amount        float64   `json:"amount"`
			Month         string    `json:"month"`
			PaymentMethod string    `json:"paymentMethod"`
			DatePaid      time.Time `json:"datePaid"`
		}
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, badRequest("invalid payment payload")
		}
		if in.Tenant == "" || in.Month == "" {
			return nil, badRequest("tenant and month are required")
		}
		doc := &paymentDoc{
			ID: uuid.NewString(), TenantID: in.Tenant, ApartmentID: in.Apartment,
			Amount: in.Amount, Month: in.Month, Method: in.PaymentMethod, DatePaid: in.DatePaid,
		}
		g.payments = append(g.payments, doc)
		return paymentJSON{
			ID: doc.ID, Tenant: g.tenantRef(doc.TenantID), Apartment: g.apartmentRef(doc.ApartmentID),
			Amount: doc.Amount, Month: doc.Month, PaymentMethod: doc.Method, DatePaid: doc.DatePaid,
		}, nil
	}
	return nil, errNotFound
}

func (g *Gateway) renderRequest(r *requestDoc) requestJSON {
	return requestJSON{
		ID: r.ID, Tenant: g.tenantRef(r.TenantID), Apartment: g.apartmentRef(r.ApartmentID),
		Description: r.Description, Amount: r.Amount, Status: r.Status,
		ReportedBy: r.ReportedBy, DateReported: r.DateReported,
	}
}

func (g *Gateway) routeMaintenance(method string, segs []string, body []byte) (interface{}, error) {
	switch {
	case method == http.MethodGet && len(segs) == 2 && (segs[1] == "active" || segs[1] == "completed"):
		wantFixed := segs[1] == "completed"
		out := make([]requestJSON, 0, len(g.requests))
		for _, r := range g.requests {
			if (r.Status == "fixed") == wantFixed {
				out = append(out, g.renderRequest(r))
			}
		}
		return out, nil

	case method == http.MethodPost && len(segs) == 1:
		var in struct {
			Tenant      string  `json:"tenant"`
			Apartment   string  `json:"apartment"`
			Description string  `json:"description"`
			Amount      float64 `json:"amount"`
			Status      string  `json:"status"`
			ReportedBy  string  `json:"reportedBy"`
		}
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, badRequest("invalid maintenance payload")
		}
		if in.Description == "" {
			return nil, badRequest("description is required")
		}
		doc := &requestDoc{
			ID: uuid.NewString(), TenantID: in.Tenant, ApartmentID: in.Apartment,
			Description: in.Description, Amount: in.Amount, Status: in.Status,
			ReportedBy: in.ReportedBy, DateReported: time.Now().UTC(),
		}
		g.requests = append(g.requests, doc)
		return g.renderRequest(doc), nil

	case method == http.MethodPut && len(segs) == 2:
		for _, r := range g.requests {
			if r.ID == segs[1] {
				var in struct {
					Status string `json:"status"`
				}
				if err := json.Unmarshal(body, &in); err != nil || in.Status == "" {
					return nil, badRequest("invalid status payload")
				}
				r.Status = in.Status
				return g.renderRequest(r), nil
			}
		}
		return nil, errNotFound
	}
	return nil, errNotFound
}

func (g *Gateway) routeDashboard(method string, segs []string) (interface{}, error) {
	if method != http.MethodGet || len(segs) != 2 {
		return nil, errNotFound
	}
	switch segs[1] {
	case "summary":
		var total float64
		for _, p := range g.payments {
			total += p.Amount
		}
		return map[string]interface{}{
			"tenants":     len(g.tenants),
			"payments":    total,
			"maintenance": len(g.requests),
		}, nil

	case "monthly-payments":
		type point struct {
			Month string  `json:"month"`
			Total float64 `json:"total"`
		}
		totals := make(map[string]float64)
		order := make([]string, 0)
		for _, p := range g.payments {
			if _, seen := totals[p.Month]; !seen {
				order = append(order, p.Month)
			}
			totals[p.Month] += p.Amount
		}
		out := make([]point, 0, len(order))
		for _, m := range order {
			out = append(out, point{Month: m, Total: totals[m]})
		}
		return out, nil
	}
	return nil, errNotFound
}
