// Package resumes assembles résumé form submissions into records,
// persists them and rebuilds template bindings for display.
package resumes

import "time"

// Experience is one work-history entry.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is one study entry.
type Education struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
	Year       string `json:"year"`
}

// ResumeData is the canonical normalized résumé content.
type ResumeData struct {
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Address     string       `json:"address"`
	Summary     string       `json:"summary"`
	Skills      []string     `json:"skills"`
	Languages   []string     `json:"languages"`
	Experience  []Experience `json:"experience"`
	Education   []Education  `json:"education"`
	Photo       string       `json:"photo,omitempty"`
	PhotoExists bool         `json:"photo_exists"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Record is one persisted résumé document. Records are immutable;
// regenerating creates a new record rather than updating an old one.
type Record struct {
	ID      string     `json:"id"`
	OwnerID string     `json:"owner_id"`
	Data    ResumeData `json:"data"`
}
