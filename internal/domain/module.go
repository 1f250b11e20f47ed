package domain

import "time"

// Module is a registered pluggable capability. Modules are not owned by any session.
type Module struct {
	Config      Blob      `json:"config"`
	Enabled     bool      `json:"enabled"`
	ID          string    `json:"id"`
	InstalledAt time.Time `json:"installed_at"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     string    `json:"version"`
}
