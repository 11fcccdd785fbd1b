package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"p9e.in/dispatch/middleware"
	"p9e.in/dispatch/models"
)

func (a *API) recordAudit(tx *gorm.DB, actor, action, target string, detail interface{}) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return tx.Create(&models.AdminAudit{
		Actor:  actor,
		Action: action,
		Target: target,
		Detail: datatypes.JSON(raw),
	}).Error
}

type forceDeleteResp struct {
	Success      bool  `json:"success"`
	DeletedTrips int64 `json:"deletedTrips"`
	DeletedMarks int64 `json:"deletedMarks"`
}

// ForceDeleteTruck removes a truck together with every trip and
// out-of-service mark that references it, in one transaction. This is
// the only cross-entity write in the service.
func (a *API) ForceDeleteTruck(w http.ResponseWriter, r *http.Request) {
	plate := mux.Vars(r)["plate"]
	actor := middleware.GetClaims(r).Username

	var deletedTrips, deletedMarks int64
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("assigned_truck_plate = ?", plate).Delete(&models.Trip{})
		if res.Error != nil {
			return res.Error
		}
		deletedTrips = res.RowsAffected

		res = tx.Where("truck_plate = ?", plate).Delete(&models.OutOfServiceMark{})
		if res.Error != nil {
			return res.Error
		}
		deletedMarks = res.RowsAffected

		if err := tx.Where("plate = ?", plate).Delete(&models.Truck{}).Error; err != nil {
			return err
		}
		return a.recordAudit(tx, actor, "force_delete_truck", plate, map[string]int64{
			"deletedTrips": deletedTrips,
			"deletedMarks": deletedMarks,
		})
	})
	if err != nil {
		log.Printf("force delete of %s failed: %v", plate, err)
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, forceDeleteResp{Success: true, DeletedTrips: deletedTrips, DeletedMarks: deletedMarks})
}

// RawFieldPatch applies a raw column->value map to one truck or trip
// row, bypassing upsert defaulting. Identity columns are not patchable.
func (a *API) RawFieldPatch(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entity, key := vars["entity"], vars["key"]
	actor := middleware.GetClaims(r).Username

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	delete(fields, "id")
	delete(fields, "plate")
	if len(fields) == 0 {
		http.Error(w, "no patchable fields in payload", http.StatusBadRequest)
		return
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		var res *gorm.DB
		switch entity {
		case "trucks":
			res = tx.Model(&models.Truck{}).Where("plate = ?", key).Updates(fields)
		case "trips":
			id, convErr := strconv.Atoi(key)
			if convErr != nil {
				return errBadEntityKey
			}
			res = tx.Model(&models.Trip{}).Where("id = ?", id).Updates(fields)
		default:
			return errUnknownEntity
		}
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return a.recordAudit(tx, actor, "raw_field_patch", entity+"/"+key, fields)
	})
	switch err {
	case nil:
		writeSuccess(w)
	case errUnknownEntity, errBadEntityKey:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case gorm.ErrRecordNotFound:
		http.Error(w, "record not found", http.StatusNotFound)
	default:
		log.Printf("raw patch of %s/%s failed: %v", entity, key, err)
		http.Error(w, "db error", http.StatusInternalServerError)
	}
}
