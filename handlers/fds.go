package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"
	"p9e.in/dispatch/models"
)

type fdsPayload struct {
	Plate          string `json:"plate"`
	Date           string `json:"date"`
	IsOutOfService bool   `json:"is_out_of_service"`
}

// SetOutOfService marks a truck unavailable on a date, or clears the
// mark. Setting is idempotent; clearing an absent mark is a no-op. Only
// exceptions are ever stored, so availability stays sparse.
func (a *API) SetOutOfService(w http.ResponseWriter, r *http.Request) {
	var req fdsPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var trucks int64
	if err := a.DB.Model(&models.Truck{}).Where("plate = ?", req.Plate).Count(&trucks).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	if trucks == 0 {
		http.Error(w, "plate does not name an existing truck", http.StatusBadRequest)
		return
	}

	var m models.OutOfServiceMark
	err := a.DB.Where("truck_plate = ? AND date = ?", req.Plate, req.Date).First(&m).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	found := err == nil

	if req.IsOutOfService {
		if !found {
			m = models.OutOfServiceMark{TruckPlate: req.Plate, Date: req.Date, IsOutOfService: true}
			if err := a.DB.Create(&m).Error; err != nil {
				http.Error(w, "db error", http.StatusInternalServerError)
				return
			}
		}
	} else if found {
		if err := a.DB.Delete(&m).Error; err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
	}
	writeSuccess(w)
}
