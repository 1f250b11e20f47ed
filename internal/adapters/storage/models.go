package storage

import (
	"time"

	"tessera/internal/domain"
)

// SessionModel is the GORM model for sessions table
type SessionModel struct {
	CreatedAt       time.Time
	ID              string `gorm:"primaryKey"`
	LastActive      time.Time
	LayoutID        *string
	Metadata        []byte
	MetadataVersion int
	Name            string
	Position        int
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// PaneModel is the GORM model for panes table
type PaneModel struct {
	CreatedAt    time.Time
	Height       int
	ID           string `gorm:"primaryKey"`
	Kind         string
	Position     int
	SessionID    string
	State        []byte
	StateVersion int
	Title        string
	UpdatedAt    time.Time
	Width        int
	X            int
	Y            int
}

// TableName specifies the table name for GORM
func (PaneModel) TableName() string { return "panes" }

// LayoutModel is the GORM model for layouts table
type LayoutModel struct {
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	IsActive  bool
	Name      string
	SessionID string
	Tree      domain.LayoutNode `gorm:"serializer:json"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (LayoutModel) TableName() string { return "layouts" }

// ModuleModel is the GORM model for modules table
type ModuleModel struct {
	Config        []byte
	ConfigVersion int
	Enabled       bool
	ID            string `gorm:"primaryKey"`
	InstalledAt   time.Time
	Kind          string
	Name          string
	UpdatedAt     time.Time
	Version       string
}

// TableName specifies the table name for GORM
func (ModuleModel) TableName() string { return "modules" }

// KeyValueModel is the GORM model for key_values table
type KeyValueModel struct {
	CreatedAt    time.Time
	Key          string `gorm:"primaryKey"`
	Namespace    string `gorm:"primaryKey"`
	UpdatedAt    time.Time
	Value        []byte
	ValueVersion int
}

// TableName specifies the table name for GORM
func (KeyValueModel) TableName() string { return "key_values" }
