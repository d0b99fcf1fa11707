package workshops

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/radstadt/rental-admin/internal/gateway"
)

var testStores = []string{"Graz", "Linz"}

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/getBookings", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("store") != "Graz" {
			w.Write([]byte(`{"bookings":[]}`))
			return
		}
		w.Write([]byte(`{"bookings":[
			{"id":"w1","bookingId":"9001","hour":"10:00","date":"2024-05-10"},
			{"id":"w2","bookingId":"9002","hour":"14:00","date":"2024-05-11"}
		]}`))
	})
	mux.HandleFunc("DELETE /api/deleteBooking/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleWorkshopsPageStartsEmpty(t *testing.T) {
	InitHandlers(gateway.New(fakeBackend(t).URL, 0), testStores)

	rec := httptest.NewRecorder()
	HandleWorkshopsPage(rec, httptest.NewRequest(http.MethodGet, "/workshops", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "Graz") || !strings.Contains(body, "Linz") {
		t.Errorf("store options missing:\n%s", body)
	}
	if strings.Contains(body, "9001") {
		t.Error("no store selected yet, the list must be empty")
	}
}

func TestHandleWorkshopRowsStoreChangeFetches(t *testing.T) {
	InitHandlers(gateway.New(fakeBackend(t).URL, 0), testStores)

	rec := httptest.NewRecorder()
	HandleWorkshopRows(rec, httptest.NewRequest(http.MethodGet, "/workshops/rows?store=Graz", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "9001") || !strings.Contains(body, "9002") {
		t.Errorf("store rows missing:\n%s", body)
	}
}

func TestHandleWorkshopRowsDateFiltersLocally(t *testing.T) {
	backend := fakeBackend(t)
	InitHandlers(gateway.New(backend.URL, 0), testStores)

	rec := httptest.NewRecorder()
	HandleWorkshopRows(rec, httptest.NewRequest(http.MethodGet, "/workshops/rows?store=Graz", nil))

	// The date filter narrows the already-fetched list without a request.
	backend.Close()

	rec = httptest.NewRecorder()
	HandleWorkshopRows(rec, httptest.NewRequest(http.MethodGet,
		"/workshops/rows?store=Graz&date=2024-05-11", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "9002") {
		t.Errorf("filtered rows missing 9002:\n%s", body)
	}
	if strings.Contains(body, "9001") {
		t.Errorf("date filter should have excluded 9001:\n%s", body)
	}
}

func TestHandleWorkshopDeleteRemovesLocally(t *testing.T) {
	InitHandlers(gateway.New(fakeBackend(t).URL, 0), testStores)

	rec := httptest.NewRecorder()
	HandleWorkshopRows(rec, httptest.NewRequest(http.MethodGet, "/workshops/rows?store=Graz", nil))

	req := httptest.NewRequest(http.MethodDelete, "/workshops/bookings/w1", nil)
	req.SetPathValue("id", "w1")
	rec = httptest.NewRecorder()
	HandleWorkshopDelete(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "9001") {
		t.Errorf("deleted booking still rendered:\n%s", body)
	}
	if !strings.Contains(body, "9002") {
		t.Errorf("unrelated booking disappeared:\n%s", body)
	}
}
