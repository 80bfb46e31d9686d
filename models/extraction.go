package models

import "time"

// Extraction stores the metric values read from one uploaded screenshot.
// Values is the JSON-encoded metric map so extra configured metrics never
// require a schema change.
type Extraction struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	FileName  string `gorm:"size:255;not null;index"`
	Values    string `gorm:"type:text"`
	// Err is set when the whole image failed (unreadable, OCR failure).
	Err string `gorm:"size:255"`
}
