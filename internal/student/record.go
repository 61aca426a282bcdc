// Package student holds the durable per-student state and its encrypted
// file-based store.
package student

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Preferences is the fixed set of per-student settings. The shape is closed
// on purpose: adding a setting means adding a field, not a map key.
type Preferences struct {
	SoundEnabled bool   `json:"sound_enabled"`
	ShowHints    bool   `json:"show_hints"`
	Difficulty   string `json:"difficulty"`
}

// DefaultPreferences returns the settings a new account starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		SoundEnabled: true,
		ShowHints:    true,
		Difficulty:   "normal",
	}
}

// Record is the durable state of one student. Username is the unique
// identifier and never changes after registration; Progress never decreases;
// Scores keeps only the most recent percentage per chapter; Achievements is
// an idempotent set.
type Record struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Username       string      `json:"username"`
	Email          string      `json:"email"`
	Credential     string      `json:"credential"`
	Progress       int         `json:"progress"`
	Scores         map[int]int `json:"scores"`
	Achievements   []string    `json:"achievements"`
	LoginCount     int         `json:"login_count"`
	TotalStudyTime int         `json:"total_study_time"`
	LastLogin      *time.Time  `json:"last_login"`
	CreatedAt      time.Time   `json:"created_at"`
	Preferences    Preferences `json:"preferences"`
}

// NewRecord creates the record for a freshly registered student. The
// username is lowercase-normalized; progress starts at the first chapter.
func NewRecord(name, username, email, cred string) *Record {
	return &Record{
		ID:          uuid.NewString(),
		Name:        name,
		Username:    strings.ToLower(username),
		Email:       strings.ToLower(email),
		Credential:  cred,
		Progress:    1,
		Scores:      map[int]int{},
		CreatedAt:   time.Now(),
		Preferences: DefaultPreferences(),
	}
}

// HasAchievement reports whether the named achievement has been earned.
func (r *Record) HasAchievement(name string) bool {
	for _, a := range r.Achievements {
		if a == name {
			return true
		}
	}
	return false
}

// GrantAchievement adds the named achievement. Granting an already-held
// achievement is a no-op.
func (r *Record) GrantAchievement(name string) {
	if r.HasAchievement(name) {
		return
	}
	r.Achievements = append(r.Achievements, name)
}
