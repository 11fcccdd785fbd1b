package models

// DailyNote is free text keyed by (date, note type).
type DailyNote struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	Date    string `gorm:"size:20;not null;uniqueIndex:idx_note_date_type" json:"date"`
	Type    string `gorm:"size:20;not null;uniqueIndex:idx_note_date_type" json:"type"`
	Content string `gorm:"type:text;default:''" json:"content"`
}
