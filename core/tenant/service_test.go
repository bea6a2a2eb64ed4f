package tenant

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Khadar01822/pms-dashboard/core"
	"github.com/Khadar01822/pms-dashboard/services/gateway/dummy"
	"github.com/Khadar01822/pms-dashboard/services/notify"
)

func setup(t *testing.T) (*Service, *dummygw.Gateway, *notifysvc.Recorder) {
	t.Helper()
	gw := dummygw.Open()
	rec := notifysvc.NewRecorder()
	return NewService(gw, rec), gw, rec
}

// seedLinked stores an occupied apartment and its tenant and loads them into
// the service.
func seedLinked(t *testing.T, svc *Service, gw *dummygw.Gateway) (tntID, aptID string) {
	t.Helper()
	moveIn := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	aptID = gw.SeedApartment("1A", 1, 12000, "occupied")
	tntID = gw.SeedTenant("Amina Yusuf", "0712345678", "amina@test.cd", "12345678", moveIn, aptID)
	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	gw.ResetCalls()
	return tntID, aptID
}

func lastNotification(t *testing.T, rec *notifysvc.Recorder) core.Notification {
	t.Helper()
	notifs := rec.Peek()
	if len(notifs) == 0 {
		t.Fatal("expected a notification, got none")
	}
	return notifs[len(notifs)-1]
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	form := UpdateTenant{
		Name:     "Amina Hassan",
		Phone:    "0798765432",
		Email:    "amina@test.cd",
		IDNumber: "12345678",
		Rent:     "15000",
	}

	t.Run("both writes land in order", func(t *testing.T) {
		svc, gw, rec := setup(t)
		tntID, aptID := seedLinked(t, svc, gw)

		outcome, err := svc.Update(ctx, tntID, form)
		if err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
		if outcome != core.BothApplied {
			t.Errorf("outcome = %v; expected BothApplied", outcome)
		}

		calls := gw.Calls()
		if len(calls) != 3 {
			t.Fatalf("expected tenant write + rent write + refresh, got %v", calls)
		}
		if calls[0].Method != http.MethodPut || calls[0].Path != "/tenants/"+tntID {
			t.Errorf("calls[0] = %v; expected PUT /tenants/%s", calls[0], tntID)
		}
		if calls[1].Method != http.MethodPut || calls[1].Path != "/apartments/"+aptID {
			t.Errorf("calls[1] = %v; expected PUT /apartments/%s", calls[1], aptID)
		}

		if rent, _ := gw.ApartmentRent(aptID); rent != 15000 {
			t.Errorf("apartment rent = %v; expected 15000", rent)
		}
		if name, phone, _, _, _ := gw.TenantFields(tntID); name != "Amina Hassan" || phone != "0798765432" {
			t.Errorf("tenant fields not updated: name=%q phone=%q", name, phone)
		}
		if notif := lastNotification(t, rec); notif.Message != "Tenant and rent updated successfully" {
			t.Errorf("notification = %q", notif.Message)
		}
	})

	t.Run("rent write fails after the tenant write landed", func(t *testing.T) {
		svc, gw, rec := setup(t)
		tntID, aptID := seedLinked(t, svc, gw)
		gw.Fail(http.MethodPut, "/apartments/"+aptID, http.StatusInternalServerError, "boom")

		outcome, err := svc.Update(ctx, tntID, form)
		if err == nil {
			t.Fatal("Update() should have failed")
		}
		if outcome != core.SecondFailedAfterFirst {
			t.Errorf("outcome = %v; expected SecondFailedAfterFirst", outcome)
		}

		// the first write is not rolled back
		if name, _, _, _, _ := gw.TenantFields(tntID); name != "Amina Hassan" {
			t.Errorf("tenant name = %q; the contact write should have landed", name)
		}
		if rent, _ := gw.ApartmentRent(aptID); rent != 12000 {
			t.Errorf("apartment rent = %v; expected it unchanged at 12000", rent)
		}
		if notif := lastNotification(t, rec); notif.Message != "Tenant updated but rent change failed" {
			t.Errorf("notification = %q", notif.Message)
		}
	})

	t.Run("rent not a number after the tenant write landed", func(t *testing.T) {
		svc, gw, _ := setup(t)
		tntID, aptID := seedLinked(t, svc, gw)

		bad := form
		bad.Rent = "lots"
		outcome, err := svc.Update(ctx, tntID, bad)
		if err == nil {
			t.Fatal("Update() should have failed")
		}
		if outcome != core.SecondFailedAfterFirst {
			t.Errorf("outcome = %v; expected SecondFailedAfterFirst", outcome)
		}
		if rent, _ := gw.ApartmentRent(aptID); rent != 12000 {
			t.Errorf("apartment rent = %v; expected it unchanged", rent)
		}
	})

	t.Run("tenant write fails: nothing applied", func(t *testing.T) {
		svc, gw, _ := setup(t)
		tntID, aptID := seedLinked(t, svc, gw)
		gw.Fail(http.MethodPut, "/tenants/"+tntID, http.StatusInternalServerError, "boom")

		outcome, err := svc.Update(ctx, tntID, form)
		if err == nil {
			t.Fatal("Update() should have failed")
		}
		if outcome != core.FirstFailed {
			t.Errorf("outcome = %v; expected FirstFailed", outcome)
		}
		if name, _, _, _, _ := gw.TenantFields(tntID); name != "Amina Yusuf" {
			t.Errorf("tenant name = %q; expected it unchanged", name)
		}
		if rent, _ := gw.ApartmentRent(aptID); rent != 12000 {
			t.Errorf("apartment rent = %v; expected it unchanged", rent)
		}
	})

	t.Run("invalid form never reaches the backend", func(t *testing.T) {
		svc, gw, rec := setup(t)
		tntID, _ := seedLinked(t, svc, gw)

		bad := form
		bad.Name = ""
		outcome, err := svc.Update(ctx, tntID, bad)
		if err == nil {
			t.Fatal("Update() should have failed")
		}
		if outcome != core.FirstFailed {
			t.Errorf("outcome = %v; expected FirstFailed", outcome)
		}
		if calls := gw.Calls(); len(calls) != 0 {
			t.Errorf("backend was called: %v", calls)
		}
		if notif := lastNotification(t, rec); notif.Message != "Please fill in all fields" {
			t.Errorf("notification = %q", notif.Message)
		}
	})

	t.Run("empty rent skips the second write", func(t *testing.T) {
		svc, gw, _ := setup(t)
		tntID, aptID := seedLinked(t, svc, gw)

		noRent := form
		noRent.Rent = ""
		outcome, err := svc.Update(ctx, tntID, noRent)
		if err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
		if outcome != core.BothApplied {
			t.Errorf("outcome = %v; expected BothApplied", outcome)
		}
		for _, call := range gw.Calls() {
			if call.Path == "/apartments/"+aptID {
				t.Errorf("unexpected rent write: %v", call)
			}
		}
	})

	t.Run("unlinked tenant skips the second write", func(t *testing.T) {
		svc, gw, _ := setup(t)
		tntID := gw.SeedTenant("Brian Otieno", "0700000000", "", "87654321", time.Time{}, "")
		if err := svc.Refresh(ctx); err != nil {
			t.Fatalf("Refresh() failed: %v", err)
		}
		gw.ResetCalls()

		outcome, err := svc.Update(ctx, tntID, form)
		if err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
		if outcome != core.BothApplied {
			t.Errorf("outcome = %v; expected BothApplied", outcome)
		}
		for _, call := range gw.Calls() {
			if call.Method == http.MethodPut && call.Path != "/tenants/"+tntID {
				t.Errorf("unexpected write: %v", call)
			}
		}
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes and re-fetches", func(t *testing.T) {
		svc, gw, rec := setup(t)
		tntID, _ := seedLinked(t, svc, gw)

		if err := svc.Delete(ctx, tntID); err != nil {
			t.Fatalf("Delete() failed: %v", err)
		}
		if got := len(svc.Tenants()); got != 0 {
			t.Errorf("local state has %d tenants; expected 0", got)
		}
		if notif := lastNotification(t, rec); notif.Message != "Tenant removed" {
			t.Errorf("notification = %q", notif.Message)
		}
	})

	t.Run("failure keeps the record", func(t *testing.T) {
		svc, gw, _ := setup(t)
		tntID, _ := seedLinked(t, svc, gw)
		gw.Fail(http.MethodDelete, "/tenants/"+tntID, http.StatusInternalServerError, "boom")

		if err := svc.Delete(ctx, tntID); err == nil {
			t.Fatal("Delete() should have failed")
		}
		if got := len(svc.Tenants()); got != 1 {
			t.Errorf("local state has %d tenants; expected 1", got)
		}
	})
}
