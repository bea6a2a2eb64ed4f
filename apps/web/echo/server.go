package echoweb

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"

	"github.com/Khadar01822/pms-dashboard/core"
	"github.com/Khadar01822/pms-dashboard/core/apartment"
	"github.com/Khadar01822/pms-dashboard/core/dashboard"
	"github.com/Khadar01822/pms-dashboard/core/maintenance"
	"github.com/Khadar01822/pms-dashboard/core/payment"
	"github.com/Khadar01822/pms-dashboard/core/tenant"
	"github.com/Khadar01822/pms-dashboard/services/notify"
	"github.com/Khadar01822/pms-dashboard/services/prefs"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		Logger         *zap.Logger
		Apartments     *apartment.Service
		Tenants        *tenant.Service
		Payments       *payment.Service
		Maintenance    *maintenance.Service
		Dashboard      *dashboard.Service
		Prefs          *prefs.Store
		Flashes        *notifysvc.Recorder
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.GetBool("debug")

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger)
	s.app.Renderer = newRenderer()
	s.app.Debug = debug

	s.app.GET("/", s.dashboardPage)
	s.app.GET("/dashboard/chart", s.dashboardChart)

	s.app.GET("/apartments", s.apartmentsPage)
	s.app.POST("/apartments", s.apartmentCreate)
	s.app.POST("/apartments/:id/delete", s.apartmentDelete)
	s.app.GET("/apartments/:unit/attach", s.attachForm)
	s.app.POST("/apartments/:unit/attach", s.attachSubmit)

	s.app.GET("/tenants", s.tenantsPage)
	s.app.POST("/tenants/:id", s.tenantUpdate)
	s.app.POST("/tenants/:id/delete", s.tenantDelete)

	s.app.GET("/payments", s.paymentsPage)
	s.app.POST("/payments/:id", s.paymentRecord)

	s.app.GET("/maintenance", s.maintenancePage)
	s.app.POST("/maintenance", s.maintenanceCreate)
	s.app.POST("/maintenance/:id/status", s.maintenanceStatus)

	s.app.POST("/theme/toggle", s.themeToggle)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
