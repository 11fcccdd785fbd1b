package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"p9e.in/dispatch/models"
)

// ExportFleet streams the whole fleet state as an xlsx workbook with one
// sheet of trucks and one of trips.
func (a *API) ExportFleet(w http.ResponseWriter, r *http.Request) {
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

	f, err := buildFleetWorkbook(trucks, trips)
	if err != nil {
		http.Error(w, "failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("fleet_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

func buildFleetWorkbook(trucks []models.Truck, trips []models.Trip) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet("Trucks")
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	truckHeaders := []string{"Plate", "Location", "Location Updated", "Created", "Deleted", "Manual Location", "Zones"}
	for i, h := range truckHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Trucks", cell, h)
		f.SetCellStyle("Trucks", cell, cell, headerStyle)
	}
	for row, t := range trucks {
		deleted := ""
		if t.DeletionDate != nil {
			deleted = *t.DeletionDate
		}
		values := []interface{}{t.Plate, t.Location, t.LocationLastUpdated, t.CreationDate, deleted, t.IsLocationManual, strings.Join(t.Zones(), ", ")}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue("Trucks", cell, v)
		}
	}

	if _, err := f.NewSheet("Trips"); err != nil {
		return nil, err
	}
	tripHeaders := []string{"ID", "Type", "Client", "Driver", "Origin", "Destination", "Load", "Unload", "Truck", "Slot", "Urgent", "Groupage", "Zone", "PG", "EP", "PP"}
	for i, h := range tripHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Trips", cell, h)
		f.SetCellStyle("Trips", cell, cell, headerStyle)
	}
	for row, t := range trips {
		truck, zone := "", ""
		if t.AssignedTruckPlate != nil {
			truck = *t.AssignedTruckPlate
		}
		if t.Zone != nil {
			zone = *t.Zone
		}
		var slot interface{}
		if t.AssignedSlot != nil {
			slot = *t.AssignedSlot
		}
		values := []interface{}{t.ID, t.Type, t.Client, t.Driver, t.Origin, t.Destination, t.LoadDate, t.UnloadDate, truck, slot, t.IsUrgent, t.IsGroupage, zone, t.PG, t.EP, t.PP}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue("Trips", cell, v)
		}
	}

	// drop the default sheet excelize creates
	f.DeleteSheet("Sheet1")
	return f, nil
}
