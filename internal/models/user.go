package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

// Gender values reported by the embedding extraction capability.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender returns the gender for a stored value and whether it is known.
func ParseGender(s string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	default:
		return "", false
	}
}

// Weekdays lists schedule keys in ISO order, Monday first.
var Weekdays = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeeklySchedule maps a lowercase weekday name to whether the user works out that day.
// Stored as a JSON object; missing keys read as false.
type WeeklySchedule map[string]bool

// DefaultWeeklySchedule returns a schedule with every day disabled.
func DefaultWeeklySchedule() WeeklySchedule {
	s := make(WeeklySchedule, len(Weekdays))
	for _, d := range Weekdays {
		s[d] = false
	}
	return s
}

// On reports whether the given weekday name is enabled.
func (s WeeklySchedule) On(weekday string) bool {
	return s[strings.ToLower(weekday)]
}

// Scan implements sql.Scanner for JSON and JSONB columns.
func (s *WeeklySchedule) Scan(src any) error {
	if src == nil {
		*s = DefaultWeeklySchedule()
		return nil
	}
	var raw types.JSONText
	if err := raw.Scan(src); err != nil {
		return fmt.Errorf("unsupported workout_days type %T", src)
	}
	out := WeeklySchedule{}
	if len(raw) > 0 {
		if err := raw.Unmarshal(&out); err != nil {
			return fmt.Errorf("decode workout_days: %w", err)
		}
	}
	if len(out) == 0 {
		out = DefaultWeeklySchedule()
	}
	*s = out
	return nil
}

// Value implements driver.Valuer.
func (s WeeklySchedule) Value() (driver.Value, error) {
	if s == nil {
		s = DefaultWeeklySchedule()
	}
	b, err := json.Marshal(map[string]bool(s))
	if err != nil {
		return nil, err
	}
	return types.JSONText(b).String(), nil
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID             uuid.UUID      `json:"id" db:"id"`                                               // Primary key
	Email              string         `json:"email" db:"email"`                                         // Unique email
	GoogleID           *string        `json:"google_id" db:"google_id"`                                 // External identity linkage
	SourcePhotoKey     *string        `json:"selfie_filename" db:"selfie_filename"`                     // Key in the uploads tier
	EmbeddingKey       *string        `json:"selfie_embedding_filename" db:"selfie_embedding_filename"` // Key in the embeddings tier
	Gender             *string        `json:"gender" db:"gender"`                                       // Detected gender, null until first extraction
	WorkoutDays        WeeklySchedule `json:"workout_days" db:"workout_days"`                           // Weekly schedule
	Mode               *string        `json:"mode" db:"mode"`                                           // shame, toned, ripped or furry
	AntiMotivationMode bool           `json:"anti_motivation_mode" db:"anti_motivation_mode"`           // Legacy flag, maps to shame
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`                               // Creation timestamp
	UpdatedAt          *time.Time     `json:"updated_at" db:"updated_at"`                               // Last update timestamp
}

// HasSourcePhoto reports whether the user uploaded a selfie.
func (u UserDB) HasSourcePhoto() bool {
	return u.SourcePhotoKey != nil && *u.SourcePhotoKey != ""
}

// HasEmbedding reports whether the user references an embedding artifact.
func (u UserDB) HasEmbedding() bool {
	return u.EmbeddingKey != nil && *u.EmbeddingKey != ""
}

// KnownGender returns the detected gender, if any.
func (u UserDB) KnownGender() (Gender, bool) {
	if u.Gender == nil {
		return "", false
	}
	return ParseGender(*u.Gender)
}

// EffectiveMode resolves the generation mode for this user.
func (u UserDB) EffectiveMode() Mode {
	var raw string
	if u.Mode != nil {
		raw = *u.Mode
	}
	g, _ := u.KnownGender()
	return ResolveMode(raw, u.AntiMotivationMode, g)
}
