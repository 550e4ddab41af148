package model

import "time"

// Setting is one row of the flat key/value store. Version is monotonic across
// the whole table so a snapshot can be identified by the highest one.
type Setting struct {
	Key       string    `gorm:"primarykey;size:100" json:"key"`
	Value     string    `json:"value" gorm:"not null"`
	Version   int64     `json:"version" gorm:"not null;index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SettingVersion is the single-row counter settings versions are drawn from.
// Writers increment it with an UPDATE, which holds the row lock until commit.
type SettingVersion struct {
	ID      uint  `gorm:"primarykey"`
	Version int64 `gorm:"not null"`
}
