package models

import "gorm.io/gorm"

// Analysis records one layout suggestion request. No design data is stored.
type Analysis struct {
	gorm.Model
	WorkspaceID     string `gorm:"index;size:64;not null" json:"workspace_id"`
	ImageDigest     string `gorm:"size:64" json:"image_digest"`
	Outcome         string `gorm:"size:16;not null" json:"outcome"`
	DurationMS      int64  `json:"duration_ms"`
	SuggestionChars int    `json:"suggestion_chars"`
}
