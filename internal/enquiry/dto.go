package enquiry

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourbrand/tours-backend/internal/enquiry/message"
	"github.com/yourbrand/tours-backend/pkg/db/models"
	"github.com/yourbrand/tours-backend/pkg/enums"
)

// EnquiryDTO exposes a captured lead in API responses.
type EnquiryDTO struct {
	ID               uuid.UUID           `json:"id"`
	SiteID           string              `json:"site_id"`
	SourcePage       string              `json:"source_page"`
	DestinationID    *uuid.UUID          `json:"destination_id,omitempty"`
	ActivityID       *uuid.UUID          `json:"activity_id,omitempty"`
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	PhoneCountryCode string              `json:"phone_country_code,omitempty"`
	PhoneNumber      string              `json:"phone_number,omitempty"`
	Message          string              `json:"message"`
	Status           enums.EnquiryStatus `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// EnquiryDetailDTO adds the decoded message structure for the dashboard
// detail view.
type EnquiryDetailDTO struct {
	EnquiryDTO
	Parsed message.ParsedEnquiry `json:"parsed"`
}

// FromModel maps the persisted enquiry into a DTO. This is the single
// row-to-record boundary; nothing else reads enquiry columns directly.
func FromModel(m *models.Enquiry) *EnquiryDTO {
	if m == nil {
		return nil
	}

	return &EnquiryDTO{
		ID:               m.ID,
		SiteID:           m.SiteID,
		SourcePage:       m.SourcePage,
		DestinationID:    m.DestinationID,
		ActivityID:       m.ActivityID,
		Name:             m.Name,
		Email:            m.Email,
		PhoneCountryCode: m.PhoneCountryCode,
		PhoneNumber:      m.PhoneNumber,
		Message:          m.Message,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// DetailFromModel maps the persisted enquiry plus its decoded message.
func DetailFromModel(m *models.Enquiry) *EnquiryDetailDTO {
	if m == nil {
		return nil
	}
	return &EnquiryDetailDTO{
		EnquiryDTO: *FromModel(m),
		Parsed:     message.Decode(m.Message),
	}
}
