package postgres

import (
	"context"
	"errors"

	preferenceDatamodel "github.com/frahmantamala/hr-dashboard/internal/core/datamodel/preference"
	"github.com/frahmantamala/hr-dashboard/internal/preference"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) preference.RepositoryAPI {
	return &PreferenceRepository{db: db}
}

func (r *PreferenceRepository) Get(ctx context.Context, key string) (*preferenceDatamodel.StorageEntry, error) {
	var entry preferenceDatamodel.StorageEntry
	err := r.db.WithContext(ctx).Where("storage_key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, entry *preferenceDatamodel.StorageEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
}
