package echoweb

import (
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/labstack/echo/v4"

	"github.com/Khadar01822/pms-dashboard/core/dashboard"
)

type dashboardData struct {
	Page
	Cards  []dashboard.Card
	Series []dashboard.MonthlyPoint
}

func (s *server) dashboardPage(ctx echo.Context) error {
	s.opts.Dashboard.Load(ctx.Request().Context())
	return ctx.Render(http.StatusOK, "dashboard.html", dashboardData{
		Page:   s.newPage("Dashboard"),
		Cards:  s.opts.Dashboard.Cards(),
		Series: s.opts.Dashboard.Series(),
	})
}

// dashboardChart renders the monthly payment series as a line chart; the
// dashboard page embeds it. The server pre-aggregates, we only plot.
func (s *server) dashboardChart(ctx echo.Context) error {
	points := s.opts.Dashboard.Series()

	months := make([]string, 0, len(points))
	data := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		months = append(months, p.Month)
		data = append(data, opts.LineData{Value: p.Total})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Monthly Payment History (KSH)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
	)
	line.SetXAxis(months).AddSeries("Total Payments", data)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	ctx.Response().WriteHeader(http.StatusOK)
	return line.Render(ctx.Response())
}
