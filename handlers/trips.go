package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"p9e.in/dispatch/models"
)

// SaveTrip upserts a trip. A payload id naming an existing trip
// overwrites that trip wholesale; otherwise a new trip is created and the
// store assigns the id. An empty assignedTruck is stored as NULL, and a
// set one must name an existing truck.
func (a *API) SaveTrip(w http.ResponseWriter, r *http.Request) {
	var req models.TripPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	plate := req.AssignedTruck
	if plate != nil && *plate == "" {
		plate = nil
	}
	if plate != nil {
		var count int64
		if err := a.DB.Model(&models.Truck{}).Where("plate = ?", *plate).Count(&count).Error; err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		if count == 0 {
			http.Error(w, "assignedTruck does not name an existing truck", http.StatusBadRequest)
			return
		}
	}

	var t models.Trip
	if req.ID != nil {
		err := a.DB.First(&t, *req.ID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		// unknown id falls through and creates a fresh trip
	}

	t.Type = req.Type
	t.Client = req.Client
	t.Driver = req.Driver
	t.Origin = req.Origin
	t.Destination = req.Destination
	t.LoadDate = req.LoadDate
	t.UnloadDate = req.UnloadDate
	t.AssignedTruckPlate = plate
	t.AssignedSlot = req.AssignedSlot
	t.IsUrgent = req.IsUrgent
	t.IsGroupage = req.IsGroupage
	t.Zone = req.Zone
	t.PG, t.EP, t.PP = req.PG, req.EP, req.PP
	t.NotifyTime = req.NotifyTime
	t.IsNotified = req.IsNotified

	if err := a.DB.Save(&t).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, t)
}

// DeleteTrip removes the trip if present; deleting an unknown id is a
// successful no-op.
func (a *API) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid trip id", http.StatusBadRequest)
		return
	}
	if err := a.DB.Delete(&models.Trip{}, id).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	writeSuccess(w)
}
