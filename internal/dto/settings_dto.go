package dto

import (
	"time"

	"github.com/lshigami/Shelfscore/internal/settings"
)

// SettingUpdateDTO sets a global setting. An empty value clears it.
type SettingUpdateDTO struct {
	Value string `json:"value"`
}

type SettingResponseDTO struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SettingsResponseDTO struct {
	Snapshot settings.Snapshot    `json:"snapshot"`
	Settings []SettingResponseDTO `json:"settings"`
}
