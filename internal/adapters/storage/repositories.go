package storage

import (
	"gorm.io/gorm"

	"tessera/internal/ports"
)

// scopedRepositories binds every repository to one connection or transaction
type scopedRepositories struct {
	keyValues *keyValueRepository
	layouts   *layoutRepository
	modules   *moduleRepository
	panes     *paneRepository
	sessions  *sessionRepository
}

var _ ports.Repositories = (*scopedRepositories)(nil)

func newScopedRepositories(tx *gorm.DB) *scopedRepositories {
	return &scopedRepositories{
		keyValues: &keyValueRepository{db: tx},
		layouts:   &layoutRepository{db: tx},
		modules:   &moduleRepository{db: tx},
		panes:     &paneRepository{db: tx},
		sessions:  &sessionRepository{db: tx},
	}
}

func (r *scopedRepositories) KeyValues() ports.KeyValueRepository { return r.keyValues }
func (r *scopedRepositories) Layouts() ports.LayoutRepository     { return r.layouts }
func (r *scopedRepositories) Modules() ports.ModuleRepository     { return r.modules }
func (r *scopedRepositories) Panes() ports.PaneRepository         { return r.panes }
func (r *scopedRepositories) Sessions() ports.SessionRepository   { return r.sessions }

// exists reports whether a row with the given primary key is present
func exists(db *gorm.DB, model any, id string) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// nextPosition returns the ordinal for a newly appended row
func nextPosition(db *gorm.DB, model any, scope string, args ...any) (int, error) {
	var pos int
	query := db.Model(model).Select("COALESCE(MAX(position), -1) + 1")
	if scope != "" {
		query = query.Where(scope, args...)
	}
	if err := query.Scan(&pos).Error; err != nil {
		return 0, err
	}
	return pos, nil
}
