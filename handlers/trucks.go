package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
	"p9e.in/dispatch/models"
)

// SaveTruck upserts a truck by plate. Every scalar field is overwritten
// from the payload and zones are replaced wholesale; omitted calendar
// fields fall back to the 2000-01-01 sentinel. Dates are stored as sent.
func (a *API) SaveTruck(w http.ResponseWriter, r *http.Request) {
	var req models.TruckPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Plate == "" {
		http.Error(w, "plate is required", http.StatusBadRequest)
		return
	}

	var t models.Truck
	err := a.DB.Where("plate = ?", req.Plate).First(&t).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	t.Plate = req.Plate
	t.Location = req.Location
	t.LocationLastUpdated = req.LocationLastUpdatedDate
	if t.LocationLastUpdated == "" {
		t.LocationLastUpdated = "2000-01-01"
	}
	t.CreationDate = req.CreationDate
	if t.CreationDate == "" {
		t.CreationDate = "2000-01-01"
	}
	t.DeletionDate = req.DeletionDate
	t.IsLocationManual = req.IsLocationManual
	t.SetZones(req.Zones)

	if err := a.DB.Save(&t).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, t.ToPayload())
}

// DeleteTruck removes the truck row outright. It refuses while any trip
// or out-of-service mark still references the plate; retiring a truck in
// normal flow means setting deletionDate through SaveTruck instead.
func (a *API) DeleteTruck(w http.ResponseWriter, r *http.Request) {
	plate := mux.Vars(r)["plate"]

	var trips int64
	if err := a.DB.Model(&models.Trip{}).Where("assigned_truck_plate = ?", plate).Count(&trips).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	var marks int64
	if err := a.DB.Model(&models.OutOfServiceMark{}).Where("truck_plate = ?", plate).Count(&marks).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if trips > 0 || marks > 0 {
		http.Error(w, "truck is still referenced by trips or out-of-service marks", http.StatusConflict)
		return
	}

	if err := a.DB.Where("plate = ?", plate).Delete(&models.Truck{}).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	writeSuccess(w)
}
