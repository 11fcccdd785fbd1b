package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"
	"p9e.in/dispatch/models"
)

type noteResp struct {
	Content string `json:"content"`
}

// GetNote returns the note for (date, type), or empty content when no
// such note exists. Never an error for an absent key.
func (a *API) GetNote(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	noteType := r.URL.Query().Get("type")

	var n models.DailyNote
	err := a.DB.Where("date = ? AND type = ?", date, noteType).First(&n).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, noteResp{Content: n.Content})
}

type notePayload struct {
	Date    string `json:"date"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// SaveNote upserts the note for (date, type).
func (a *API) SaveNote(w http.ResponseWriter, r *http.Request) {
	var req notePayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var n models.DailyNote
	err := a.DB.Where("date = ? AND type = ?", req.Date, req.Type).First(&n).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	n.Date = req.Date
	n.Type = req.Type
	n.Content = req.Content
	if err := a.DB.Save(&n).Error; err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	writeSuccess(w)
}
