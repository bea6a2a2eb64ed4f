package dashboard

import (
	"context"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Khadar01822/pms-dashboard/core"
	"github.com/Khadar01822/pms-dashboard/core/apartment"
)

type (
	// Summary is the server-precomputed aggregate counters.
	Summary struct {
		Tenants     int     `json:"tenants"`
		Payments    float64 `json:"payments"`
		Maintenance int     `json:"maintenance"`
	}

	// MonthlyPoint is one point of the pre-aggregated payment series.
	MonthlyPoint struct {
		Month string  `json:"month"`
		Total float64 `json:"total"`
	}

	// Card is one clickable summary card.
	Card struct {
		Title string
		Value string
		Path  string
	}

	Service struct {
		mu      sync.RWMutex
		gw      core.Gateway
		log     *zap.Logger
		summary Summary
		series  []MonthlyPoint
	}
)

// printer groups thousands the way the source UI did with toLocaleString.
var printer = message.NewPrinter(language.English)

func NewService(gw core.Gateway, log *zap.Logger) *Service {
	return &Service{gw: gw, log: log}
}

// Load issues the two dashboard fetches independently; a failing one leaves
// the other's data intact and is only logged, the page stays up.
func (svc *Service) Load(ctx context.Context) {
	var summary Summary
	if err := svc.gw.Get(ctx, "/dashboard/summary", &summary); err != nil {
		svc.log.Error("dashboard summary fetch failed", zap.Error(err))
	} else {
		svc.mu.Lock()
		svc.summary = summary
		svc.mu.Unlock()
	}

	var series []MonthlyPoint
	if err := svc.gw.Get(ctx, "/dashboard/monthly-payments", &series); err != nil {
		svc.log.Error("dashboard monthly payments fetch failed", zap.Error(err))
	} else {
		svc.mu.Lock()
		svc.series = series
		svc.mu.Unlock()
	}
}

func (svc *Service) Summary() Summary {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.summary
}

func (svc *Service) Series() []MonthlyPoint {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	out := make([]MonthlyPoint, len(svc.series))
	copy(out, svc.series)
	return out
}

// AvailableUnits derives the free-unit figure from the tenant count against
// the fixed catalog size, floored at zero.
// TODO: derive from apartments with status occupied once product confirms
// whether tenant count or unit status is the occupancy source of truth.
func (svc *Service) AvailableUnits() int {
	available := len(apartment.DefaultUnits) - svc.Summary().Tenants
	if available < 0 {
		return 0
	}
	return available
}

// AvailableUnitsText renders the apartments card value.
func (svc *Service) AvailableUnitsText() string {
	n := svc.AvailableUnits()
	if n == 1 {
		return "1 Unit Available"
	}
	return fmt.Sprintf("%d Units Available", n)
}

// Cards builds the clickable summary cards in display order.
func (svc *Service) Cards() []Card {
	sum := svc.Summary()
	return []Card{
		{Title: "Apartments", Value: svc.AvailableUnitsText(), Path: "/apartments"},
		{Title: "Tenants", Value: fmt.Sprintf("%d", sum.Tenants), Path: "/tenants"},
		{Title: "Payments", Value: "KSH " + FormatAmount(sum.Payments), Path: "/payments"},
		{Title: "Maintenance", Value: fmt.Sprintf("%d", sum.Maintenance), Path: "/maintenance"},
	}
}

// FormatAmount renders a KSH amount with thousand grouping.
func FormatAmount(amount float64) string {
	return printer.Sprintf("%d", int64(math.Round(amount)))
}
