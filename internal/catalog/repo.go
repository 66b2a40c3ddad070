package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourbrand/tours-backend/pkg/db/models"
)

// Repository handles catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to catalog operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListDestinations returns all destinations, featured first.
func (r *Repository) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	var destinations []models.Destination
	if err := r.db.WithContext(ctx).
		Order("featured DESC, name ASC").
		Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

// FindDestinationByID loads a destination with its active activities.
func (r *Repository) FindDestinationByID(ctx context.Context, id uuid.UUID) (*models.Destination, error) {
	var destination models.Destination
	if err := r.db.WithContext(ctx).
		Preload("Activities", "active = ?", true).
		Where("id = ?", id).
		First(&destination).Error; err != nil {
		return nil, err
	}
	return &destination, nil
}

// FindActivityByID loads a single active activity.
func (r *Repository) FindActivityByID(ctx context.Context, id uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}
