package enquiry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourbrand/tours-backend/pkg/db/models"
	"github.com/yourbrand/tours-backend/pkg/enums"
)

// Repository handles enquiry persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to enquiry operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new enquiry row.
func (r *Repository) Create(ctx context.Context, enq *models.Enquiry) error {
	if enq == nil {
		return fmt.Errorf("enquiry is required")
	}
	return r.db.WithContext(ctx).Create(enq).Error
}

// List returns enquiries newest first, optionally filtered by status and a
// case-insensitive search over name, email, and message.
func (r *Repository) List(ctx context.Context, status *enums.EnquiryStatus, search string) ([]models.Enquiry, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if search != "" {
		// LOWER/LIKE instead of ILIKE so the clause runs on both the
		// postgres and sqlite dialects.
		pattern := "%" + search + "%"
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(message) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	var enquiries []models.Enquiry
	if err := query.Find(&enquiries).Error; err != nil {
		return nil, err
	}
	return enquiries, nil
}

// FindByID loads an enquiry by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Enquiry, error) {
	var enq models.Enquiry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&enq).Error; err != nil {
		return nil, err
	}
	return &enq, nil
}

// UpdateStatus sets the status column and returns the refreshed row.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.EnquiryStatus) (*models.Enquiry, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Enquiry{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}
