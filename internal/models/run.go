package models

import "github.com/google/uuid"

// EmbeddingStatus is the outcome of ensuring a user's embedding.
type EmbeddingStatus string

const (
	EmbeddingExtracted EmbeddingStatus = "extracted"
	EmbeddingExists    EmbeddingStatus = "exists"
	EmbeddingFailed    EmbeddingStatus = "failed"
)

// UserState is a state of the per-user processing machine.
type UserState string

const (
	StateSelected       UserState = "selected"
	StateEmbeddingReady UserState = "embedding_ready"
	StateComposited     UserState = "composited"
	StatePersisted      UserState = "persisted"
	StateNotified       UserState = "notified"
	StateNotifyFailed   UserState = "notify_failed"
	StateFailed         UserState = "failed"
)

// Terminal reports whether no further transition is possible.
func (s UserState) Terminal() bool {
	return s == StateNotified || s == StateNotifyFailed || s == StateFailed
}

// Succeeded reports whether the state counts as a success for run accounting.
func (s UserState) Succeeded() bool {
	return s == StateNotified || s == StateNotifyFailed
}

// Cohort is the set of users selected for a run.
type Cohort struct {
	Users           []UserDB
	Override        bool
	MatchedSchedule int // users whose schedule marks today (or override matches)
	SkippedDone     int // users already generated for today
}

// ToProcess returns the number of users in the cohort.
func (c Cohort) ToProcess() int {
	return len(c.Users)
}

// UserOutcome is the terminal result of processing one user.
type UserOutcome struct {
	UserID    uuid.UUID
	State     UserState
	Extracted bool
	ImageKey  string
	Err       error
}

// RunSummary aggregates run counters.
type RunSummary struct {
	Total        int `json:"total"`
	Extracted    int `json:"extracted"`
	Succeeded    int `json:"succeeded"`
	Failed       int `json:"failed"`
	NotifyFailed int `json:"notify_failed"`
}

// Add folds one user outcome into the summary.
func (s *RunSummary) Add(o UserOutcome) {
	if o.Extracted {
		s.Extracted++
	}
	switch {
	case o.State.Succeeded():
		s.Succeeded++
		if o.State == StateNotifyFailed {
			s.NotifyFailed++
		}
	default:
		s.Failed++
	}
}
