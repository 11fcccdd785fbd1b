package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gorilla/mux"
	"p9e.in/dispatch/models"
)

func TestSaveTruckCreatesThenUpdates(t *testing.T) {
	a := newTestAPI(t)

	saveTruck(t, a, models.TruckPayload{Plate: "AB-123", Location: "Madrid"})

	var count int64
	a.DB.Model(&models.Truck{}).Count(&count)
	if count != 1 {
		t.Fatalf("after first upsert: %d trucks, want 1", count)
	}

	out := saveTruck(t, a, models.TruckPayload{Plate: "AB-123", Location: "Lyon"})
	if out.Location != "Lyon" {
		t.Errorf("location = %q, want Lyon", out.Location)
	}

	a.DB.Model(&models.Truck{}).Count(&count)
	if count != 1 {
		t.Fatalf("after second upsert: %d trucks, want 1 (no duplicate row)", count)
	}
}

func TestSaveTruckDefaults(t *testing.T) {
	a := newTestAPI(t)

	out := saveTruck(t, a, models.TruckPayload{Plate: "CD-456"})

	if out.LocationLastUpdatedDate != "2000-01-01" {
		t.Errorf("locationLastUpdatedDate = %q, want sentinel 2000-01-01", out.LocationLastUpdatedDate)
	}
	if out.CreationDate != "2000-01-01" {
		t.Errorf("creationDate = %q, want sentinel 2000-01-01", out.CreationDate)
	}
	if out.DeletionDate != nil {
		t.Errorf("deletionDate = %v, want null", *out.DeletionDate)
	}
	if out.IsLocationManual {
		t.Error("isLocationManual defaulted to true")
	}
	if len(out.Zones) != 0 {
		t.Errorf("zones = %v, want empty", out.Zones)
	}
}

func TestSaveTruckRequiresPlate(t *testing.T) {
	a := newTestAPI(t)
	rr := do(a.SaveTruck, httptest.NewRequest("POST", "/api/trucks", jsonBody(t, models.TruckPayload{})))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestTruckZonesRoundTrip(t *testing.T) {
	a := newTestAPI(t)

	tests := []struct {
		name  string
		zones []string
		want  []string
	}{
		{"two zones keep order", []string{"north", "south"}, []string{"north", "south"}},
		{"single zone", []string{"east"}, []string{"east"}},
		{"empty replaces wholesale", []string{}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := saveTruck(t, a, models.TruckPayload{Plate: "ZZ-1", Zones: tt.zones})
			if !reflect.DeepEqual(out.Zones, tt.want) {
				t.Errorf("zones = %#v, want %#v", out.Zones, tt.want)
			}
		})
	}
}

func TestSaveTruckSoftDelete(t *testing.T) {
	a := newTestAPI(t)

	saveTruck(t, a, models.TruckPayload{Plate: "EF-789", Location: "Bilbao"})
	out := saveTruck(t, a, models.TruckPayload{Plate: "EF-789", Location: "Bilbao", DeletionDate: strPtr("2024-07-01")})
	if out.DeletionDate == nil || *out.DeletionDate != "2024-07-01" {
		t.Fatalf("deletionDate = %v, want 2024-07-01", out.DeletionDate)
	}

	// retired trucks stay in the snapshot
	rr := do(a.InitialData, httptest.NewRequest("GET", "/api/initial-data", nil))
	var snap struct {
		Trucks []models.TruckPayload `json:"trucks"`
	}
	decode(t, rr, &snap)
	if len(snap.Trucks) != 1 {
		t.Fatalf("snapshot trucks = %d, want 1", len(snap.Trucks))
	}

	// and the date can be cleared again
	out = saveTruck(t, a, models.TruckPayload{Plate: "EF-789", Location: "Bilbao"})
	if out.DeletionDate != nil {
		t.Fatalf("deletionDate = %v, want cleared", *out.DeletionDate)
	}
}

func TestDeleteTruckGuardsReferences(t *testing.T) {
	a := newTestAPI(t)

	saveTruck(t, a, models.TruckPayload{Plate: "GH-001"})
	trip := saveTrip(t, a, models.TripPayload{
		Type: "departure", Client: "Acme", Origin: "Madrid", Destination: "Lyon",
		LoadDate: "2024-06-01", UnloadDate: "2024-06-03",
		AssignedTruck: strPtr("GH-001"),
	})

	req := httptest.NewRequest("DELETE", "/api/trucks/GH-001", nil)
	req = mux.SetURLVars(req, map[string]string{"plate": "GH-001"})
	rr := do(a.DeleteTruck, req)
	if rr.Code != http.StatusConflict {
		t.Fatalf("delete referenced truck: status %d, want 409", rr.Code)
	}

	// unassign the trip, then the delete goes through
	payload := models.TripPayload{
		ID: &trip.ID, Type: trip.Type, Client: trip.Client, Origin: trip.Origin,
		Destination: trip.Destination, LoadDate: trip.LoadDate, UnloadDate: trip.UnloadDate,
	}
	saveTrip(t, a, payload)

	req = httptest.NewRequest("DELETE", "/api/trucks/GH-001", nil)
	req = mux.SetURLVars(req, map[string]string{"plate": "GH-001"})
	rr = do(a.DeleteTruck, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("delete unreferenced truck: status %d, body %s", rr.Code, rr.Body.String())
	}

	var count int64
	a.DB.Model(&models.Truck{}).Count(&count)
	if count != 0 {
		t.Fatalf("trucks remaining = %d, want 0", count)
	}
}

func TestDeleteTruckAbsentIsNoOp(t *testing.T) {
	a := newTestAPI(t)
	req := httptest.NewRequest("DELETE", "/api/trucks/NOPE", nil)
	req = mux.SetURLVars(req, map[string]string{"plate": "NOPE"})
	rr := do(a.DeleteTruck, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp successResp
	decode(t, rr, &resp)
	if !resp.Success {
		t.Error("success = false, want true")
	}
}
