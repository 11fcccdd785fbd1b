package models

// Trip is one transport order. AssignedTruckPlate is nil while the trip
// is unassigned; an empty string is never stored. Slot interpretation
// belongs to the consuming scheduler.
type Trip struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Type               string  `gorm:"size:20;not null" json:"type"`
	Client             string  `gorm:"size:100;not null" json:"client"`
	Driver             string  `gorm:"size:100;default:''" json:"driver"`
	Origin             string  `gorm:"size:100;not null" json:"origin"`
	Destination        string  `gorm:"size:100;not null" json:"destination"`
	LoadDate           string  `gorm:"size:20;not null" json:"loadDate"`
	UnloadDate         string  `gorm:"size:20;not null" json:"unloadDate"`
	AssignedTruckPlate *string `gorm:"size:20;index" json:"assignedTruck"`
	AssignedSlot       *int    `json:"assignedSlot"`
	IsUrgent           bool    `gorm:"default:false" json:"isUrgent"`
	IsGroupage         bool    `gorm:"default:false" json:"isGroupage"`
	Zone               *string `gorm:"size:50" json:"zone"`
	PG                 int     `gorm:"column:pg;default:0" json:"pg"`
	EP                 int     `gorm:"column:ep;default:0" json:"ep"`
	PP                 int     `gorm:"column:pp;default:0" json:"pp"`
	NotifyTime         string  `gorm:"size:20;default:''" json:"notifyTime"`
	IsNotified         bool    `gorm:"default:false" json:"isNotified"`
}

// TripPayload is the wire form of a Trip upsert. ID is optional: when it
// names an existing trip that trip is overwritten, otherwise the store
// assigns a fresh one.
type TripPayload struct {
	ID            *uint   `json:"id"`
	Type          string  `json:"type"`
	Client        string  `json:"client"`
	Driver        string  `json:"driver"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	LoadDate      string  `json:"loadDate"`
	UnloadDate    string  `json:"unloadDate"`
	AssignedTruck *string `json:"assignedTruck"`
	AssignedSlot  *int    `json:"assignedSlot"`
	IsUrgent      bool    `json:"isUrgent"`
	IsGroupage    bool    `json:"isGroupage"`
	Zone          *string `json:"zone"`
	PG            int     `json:"pg"`
	EP            int     `json:"ep"`
	PP            int     `json:"pp"`
	NotifyTime    string  `json:"notifyTime"`
	IsNotified    bool    `json:"isNotified"`
}
