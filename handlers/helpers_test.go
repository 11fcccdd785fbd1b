package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"p9e.in/dispatch/middleware"
	"p9e.in/dispatch/models"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Truck{}, &models.Trip{},
		&models.OutOfServiceMark{}, &models.DailyNote{}, &models.AdminAudit{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("encode body: %v", err)
	}
	return buf
}

func do(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

// doAuthed runs the handler behind the JWT middleware with a freshly
// minted admin token, so handlers that read claims see a real identity.
func doAuthed(t *testing.T, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	token, err := middleware.GenerateToken("u-1", "ops", true)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	middleware.JWTMiddleware(http.HandlerFunc(h)).ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

func saveTruck(t *testing.T, a *API, payload models.TruckPayload) models.TruckPayload {
	t.Helper()
	rr := do(a.SaveTruck, httptest.NewRequest("POST", "/api/trucks", jsonBody(t, payload)))
	if rr.Code != http.StatusOK {
		t.Fatalf("save truck: status %d, body %s", rr.Code, rr.Body.String())
	}
	var out models.TruckPayload
	decode(t, rr, &out)
	return out
}

func saveTrip(t *testing.T, a *API, payload models.TripPayload) models.Trip {
	t.Helper()
	rr := do(a.SaveTrip, httptest.NewRequest("POST", "/api/trips", jsonBody(t, payload)))
	if rr.Code != http.StatusOK {
		t.Fatalf("save trip: status %d, body %s", rr.Code, rr.Body.String())
	}
	var out models.Trip
	decode(t, rr, &out)
	return out
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
