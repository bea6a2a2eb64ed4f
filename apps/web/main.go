package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/Khadar01822/pms-dashboard/apps/web/echo"
	"github.com/Khadar01822/pms-dashboard/core"
	"github.com/Khadar01822/pms-dashboard/core/apartment"
	"github.com/Khadar01822/pms-dashboard/core/dashboard"
	"github.com/Khadar01822/pms-dashboard/core/maintenance"
	"github.com/Khadar01822/pms-dashboard/core/payment"
	"github.com/Khadar01822/pms-dashboard/core/tenant"
	"github.com/Khadar01822/pms-dashboard/services/gateway"
	"github.com/Khadar01822/pms-dashboard/services/notify"
	"github.com/Khadar01822/pms-dashboard/services/prefs"
)

func main() {
	var logger *zap.Logger
	var err error
	if core.Conf.GetBool("debug") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	errAndDie(err)
	defer func() { _ = logger.Sync() }()

	// set up services
	gw := gatewaysvc.NewRestyGateway(logger)
	flashes := notifysvc.NewRecorder()
	notif := notifysvc.NewMultiNotifier(notifysvc.NewConsoleNotifier(os.Stdout), flashes)

	store, err := prefs.Open(core.Conf.GetString("prefsFile"))
	errAndDie(err)

	// start web server
	app := echoweb.NewServer(&echoweb.Options{
		Address:     core.Conf.GetString("serverAddress"),
		Logger:      logger,
		Apartments:  apartment.NewService(gw, notif),
		Tenants:     tenant.NewService(gw, notif),
		Payments:    payment.NewService(gw, notif),
		Maintenance: maintenance.NewService(gw, notif),
		Dashboard:   dashboard.NewService(gw, logger),
		Prefs:       store,
		Flashes:     flashes,
	})
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
