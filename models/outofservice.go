package models

// OutOfServiceMark records that a truck is unavailable on one date.
// A row exists only while the truck is marked out of service; clearing
// availability deletes the row. That keeps the calendar sparse.
type OutOfServiceMark struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	TruckPlate     string `gorm:"size:20;not null;uniqueIndex:idx_oos_plate_date" json:"plate"`
	Date           string `gorm:"size:20;not null;uniqueIndex:idx_oos_plate_date" json:"date"`
	IsOutOfService bool   `gorm:"default:true" json:"isOutOfService"`
}
