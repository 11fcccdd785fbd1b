package models

import "strings"

// Truck is one vehicle in the fleet. Plate is the external identity;
// trips and out-of-service marks reference trucks by plate, not by ID.
// Calendar fields are stored as ISO strings (YYYY-MM-DD) to match the
// front end, with "2000-01-01" as the never-updated sentinel.
type Truck struct {
	ID                  uint    `gorm:"primaryKey" json:"-"`
	Plate               string  `gorm:"size:20;uniqueIndex;not null" json:"plate"`
	Location            string  `gorm:"size:100;default:''" json:"location"`
	LocationLastUpdated string  `gorm:"size:20;default:'2000-01-01'" json:"locationLastUpdatedDate"`
	CreationDate        string  `gorm:"size:20;not null" json:"creationDate"`
	DeletionDate        *string `gorm:"size:20" json:"deletionDate"`
	IsLocationManual    bool    `gorm:"default:false" json:"isLocationManual"`
	ZonesStr            string  `gorm:"size:200;default:''" json:"-"`
}

// TruckPayload is the wire form of a Truck: zones travel as an array
// while the row stores them comma-joined.
type TruckPayload struct {
	Plate                   string   `json:"plate"`
	Location                string   `json:"location"`
	LocationLastUpdatedDate string   `json:"locationLastUpdatedDate"`
	CreationDate            string   `json:"creationDate"`
	DeletionDate            *string  `json:"deletionDate"`
	IsLocationManual        bool     `json:"isLocationManual"`
	Zones                   []string `json:"zones"`
}

// Zones decodes the stored zone list. An empty column yields an empty
// slice, never [""].
func (t *Truck) Zones() []string {
	if t.ZonesStr == "" {
		return []string{}
	}
	return strings.Split(t.ZonesStr, ",")
}

// SetZones replaces the zone membership wholesale.
func (t *Truck) SetZones(zones []string) {
	t.ZonesStr = strings.Join(zones, ",")
}

func (t *Truck) ToPayload() TruckPayload {
	return TruckPayload{
		Plate:                   t.Plate,
		Location:                t.Location,
		LocationLastUpdatedDate: t.LocationLastUpdated,
		CreationDate:            t.CreationDate,
		DeletionDate:            t.DeletionDate,
		IsLocationManual:        t.IsLocationManual,
		Zones:                   t.Zones(),
	}
}
