package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yourbrand/tours-backend/internal/description"
	"github.com/yourbrand/tours-backend/pkg/db/models"
)

// DestinationDTO exposes destination data in API responses.
type DestinationDTO struct {
	ID           uuid.UUID            `json:"id"`
	Slug         string               `json:"slug"`
	Name         string               `json:"name"`
	Country      string               `json:"country"`
	Region       *string              `json:"region,omitempty"`
	Summary      *string              `json:"summary,omitempty"`
	Description  string               `json:"description"`
	Highlights   []string             `json:"highlights"`
	HeroImageURL *string              `json:"hero_image_url,omitempty"`
	Currency     string               `json:"currency"`
	Featured     bool                 `json:"featured"`
	Activities   []ActivitySummaryDTO `json:"activities,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// ActivitySummaryDTO is the compact activity shape embedded in destination detail.
type ActivitySummaryDTO struct {
	ID           uuid.UUID       `json:"id"`
	Slug         string          `json:"slug"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Price        decimal.Decimal `json:"price"`
	Currency     string          `json:"currency"`
	DurationDays *int            `json:"duration_days,omitempty"`
	ImageURL     *string         `json:"image_url,omitempty"`
}

// ActivityDTO is the full activity detail, with the raw description broken
// into structured sections at read time.
type ActivityDTO struct {
	ID            uuid.UUID            `json:"id"`
	DestinationID uuid.UUID            `json:"destination_id"`
	Slug          string               `json:"slug"`
	Name          string               `json:"name"`
	Location      string               `json:"location"`
	Description   string               `json:"description"`
	Sections      description.Sections `json:"sections"`
	Price         decimal.Decimal      `json:"price"`
	Currency      string               `json:"currency"`
	DurationDays  *int                 `json:"duration_days,omitempty"`
	ImageURL      *string              `json:"image_url,omitempty"`
	Tags          []string             `json:"tags"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// DestinationFromModel maps the persisted destination into a DTO.
func DestinationFromModel(m *models.Destination) *DestinationDTO {
	if m == nil {
		return nil
	}

	dto := &DestinationDTO{
		ID:           m.ID,
		Slug:         m.Slug,
		Name:         m.Name,
		Country:      m.Country,
		Region:       m.Region,
		Summary:      m.Summary,
		Description:  m.Description,
		Highlights:   append([]string{}, m.Highlights...),
		HeroImageURL: m.HeroImageURL,
		Currency:     m.Currency,
		Featured:     m.Featured,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	for i := range m.Activities {
		dto.Activities = append(dto.Activities, ActivitySummaryFromModel(&m.Activities[i]))
	}

	return dto
}

// ActivitySummaryFromModel maps an activity into its compact listing shape.
func ActivitySummaryFromModel(m *models.Activity) ActivitySummaryDTO {
	return ActivitySummaryDTO{
		ID:           m.ID,
		Slug:         m.Slug,
		Name:         m.Name,
		Location:     m.Location,
		Price:        m.Price,
		Currency:     m.Currency,
		DurationDays: m.DurationDays,
		ImageURL:     m.ImageURL,
	}
}

// ActivityFromModel maps the persisted activity into its detail DTO,
// running the sectionizer over the raw description.
func ActivityFromModel(m *models.Activity) *ActivityDTO {
	if m == nil {
		return nil
	}

	return &ActivityDTO{
		ID:            m.ID,
		DestinationID: m.DestinationID,
		Slug:          m.Slug,
		Name:          m.Name,
		Location:      m.Location,
		Description:   m.Description,
		Sections:      description.Sectionize(m.Description),
		Price:         m.Price,
		Currency:      m.Currency,
		DurationDays:  m.DurationDays,
		ImageURL:      m.ImageURL,
		Tags:          append([]string{}, m.Tags...),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
