package storage

import (
	"tessera/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session
func sessionModelToDomain(m SessionModel, paneIDs []string) domain.Session {
	if paneIDs == nil {
		paneIDs = []string{}
	}
	return domain.Session{
		CreatedAt:  m.CreatedAt,
		ID:         m.ID,
		LastActive: m.LastActive,
		LayoutID:   m.LayoutID,
		Metadata:   domain.NewBlob(m.MetadataVersion, m.Metadata),
		Name:       m.Name,
		PaneIDs:    paneIDs,
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session) SessionModel {
	return SessionModel{
		CreatedAt:       s.CreatedAt,
		ID:              s.ID,
		LastActive:      s.LastActive,
		LayoutID:        s.LayoutID,
		Metadata:        s.Metadata.Data,
		MetadataVersion: s.Metadata.SchemaVersion,
		Name:            s.Name,
	}
}

func paneModelToDomain(m PaneModel) domain.Pane {
	return domain.Pane{
		CreatedAt: m.CreatedAt,
		Geometry:  domain.Geometry{Height: m.Height, Width: m.Width, X: m.X, Y: m.Y},
		ID:        m.ID,
		Kind:      domain.PaneKind(m.Kind),
		Position:  m.Position,
		SessionID: m.SessionID,
		State:     domain.NewBlob(m.StateVersion, m.State),
		Title:     m.Title,
		UpdatedAt: m.UpdatedAt,
	}
}

func domainToPaneModel(p domain.Pane) PaneModel {
	return PaneModel{
		CreatedAt:    p.CreatedAt,
		Height:       p.Geometry.Height,
		ID:           p.ID,
		Kind:         string(p.Kind),
		Position:     p.Position,
		SessionID:    p.SessionID,
		State:        p.State.Data,
		StateVersion: p.State.SchemaVersion,
		Title:        p.Title,
		UpdatedAt:    p.UpdatedAt,
		Width:        p.Geometry.Width,
		X:            p.Geometry.X,
		Y:            p.Geometry.Y,
	}
}

func layoutModelToDomain(m LayoutModel) domain.Layout {
	return domain.Layout{
		CreatedAt: m.CreatedAt,
		ID:        m.ID,
		IsActive:  m.IsActive,
		Name:      m.Name,
		SessionID: m.SessionID,
		Tree:      m.Tree,
		UpdatedAt: m.UpdatedAt,
	}
}

func domainToLayoutModel(l domain.Layout) LayoutModel {
	return LayoutModel{
		CreatedAt: l.CreatedAt,
		ID:        l.ID,
		IsActive:  l.IsActive,
		Name:      l.Name,
		SessionID: l.SessionID,
		Tree:      l.Tree,
		UpdatedAt: l.UpdatedAt,
	}
}

func moduleModelToDomain(m ModuleModel) domain.Module {
	return domain.Module{
		Config:      domain.NewBlob(m.ConfigVersion, m.Config),
		Enabled:     m.Enabled,
		ID:          m.ID,
		InstalledAt: m.InstalledAt,
		Kind:        m.Kind,
		Name:        m.Name,
		UpdatedAt:   m.UpdatedAt,
		Version:     m.Version,
	}
}

func domainToModuleModel(m domain.Module) ModuleModel {
	return ModuleModel{
		Config:        m.Config.Data,
		ConfigVersion: m.Config.SchemaVersion,
		Enabled:       m.Enabled,
		ID:            m.ID,
		InstalledAt:   m.InstalledAt,
		Kind:          m.Kind,
		Name:          m.Name,
		UpdatedAt:     m.UpdatedAt,
		Version:       m.Version,
	}
}

func keyValueModelToDomain(m KeyValueModel) domain.KVEntry {
	return domain.KVEntry{
		CreatedAt: m.CreatedAt,
		Key:       m.Key,
		Namespace: m.Namespace,
		UpdatedAt: m.UpdatedAt,
		Value:     domain.NewBlob(m.ValueVersion, m.Value),
	}
}
