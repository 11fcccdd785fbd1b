package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"
)

// API holds the storage handle every handler operates on. Routes receive
// an *API; nothing reads from an ambient global.
type API struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *API {
	return &API{DB: db}
}

type successResp struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, successResp{Success: true})
}
