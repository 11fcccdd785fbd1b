package handlers

import (
	"net/http"

	"p9e.in/dispatch/models"
)

type initialData struct {
	Trucks  []models.TruckPayload      `json:"trucks"`
	Trips   []models.Trip              `json:"trips"`
	FdsData map[string]map[string]bool `json:"fds_data"`
}

// InitialData is the single bulk read: every truck (soft-deleted ones
// included), every trip, and the out-of-service mapping. The front end
// fetches this once per session and pushes per-entity writes back.
func (a *API) InitialData(w http.ResponseWriter, r *http.Request) {
	var trucks []models.Truck
	if err := a.DB.Find(&trucks).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	var trips []models.Trip
	if err := a.DB.Find(&trips).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	var marks []models.OutOfServiceMark
	if err := a.DB.Where("is_out_of_service = ?", true).Find(&marks).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	resp := initialData{
		Trucks:  make([]models.TruckPayload, 0, len(trucks)),
		Trips:   trips,
		FdsData: make(map[string]map[string]bool),
	}
	if resp.Trips == nil {
		resp.Trips = []models.Trip{}
	}
	for i := range trucks {
		resp.Trucks = append(resp.Trucks, trucks[i].ToPayload())
	}
	for _, m := range marks {
		if resp.FdsData[m.TruckPlate] == nil {
			resp.FdsData[m.TruckPlate] = make(map[string]bool)
		}
		resp.FdsData[m.TruckPlate][m.Date] = true
	}
	writeJSON(w, resp)
}
