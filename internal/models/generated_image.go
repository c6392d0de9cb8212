package models

import "github.com/google/uuid"

// GeneratedImageDB represents one successful generation.
type GeneratedImageDB struct {
	ImageID        uuid.UUID `json:"id" db:"id"`                           // Primary key
	UserID         uuid.UUID `json:"user_id" db:"user_id"`                 // Owner
	ImageKey       string    `json:"image_key" db:"image_key"`             // Key in the generated tier
	GenerationDate string    `json:"generation_date" db:"generation_date"` // Calendar day (YYYY-MM-DD), the dedup key
	GeneratedAtMs  int64     `json:"generated_at_ms" db:"generated_at_ms"` // Epoch milliseconds, tie-break within a day
	Mode           string    `json:"mode" db:"mode"`                       // Mode used for this image
	IsOverride     bool      `json:"is_override" db:"is_override"`         // Produced by an operator override run
}
