package enquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yourbrand/tours-backend/internal/enquiry/message"
	"github.com/yourbrand/tours-backend/pkg/config"
	"github.com/yourbrand/tours-backend/pkg/db/models"
	"github.com/yourbrand/tours-backend/pkg/enums"
	pkgerrors "github.com/yourbrand/tours-backend/pkg/errors"
)

type enquiryRepository interface {
	Create(ctx context.Context, enq *models.Enquiry) error
	List(ctx context.Context, status *enums.EnquiryStatus, search string) ([]models.Enquiry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Enquiry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.EnquiryStatus) (*models.Enquiry, error)
}

// SubmitInput carries one enquiry form submission.
type SubmitInput struct {
	Contact    message.Contact
	Items      []message.CartItem
	SourcePage string
	FreeText   string
}

// SubmitResult is returned to the storefront after capture.
type SubmitResult struct {
	EnquiryID uuid.UUID `json:"enquiry_id"`
}

// ListFilter narrows the dashboard listing.
type ListFilter struct {
	Status *enums.EnquiryStatus
	Search string
}

// Service exposes enquiry capture and triage operations.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error)
	List(ctx context.Context, filter ListFilter) ([]EnquiryDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*EnquiryDetailDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.EnquiryStatus) (*EnquiryDTO, error)
}

type service struct {
	repo enquiryRepository
	site config.SiteConfig
	loc  *time.Location
	now  func() time.Time
}

// NewService builds an enquiry service. The site timezone is resolved once
// here; an unknown zone falls back to UTC rather than failing startup.
func NewService(repo enquiryRepository, site config.SiteConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("enquiry repository required")
	}

	loc, err := time.LoadLocation(site.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return &service{
		repo: repo,
		site: site,
		loc:  loc,
		now:  time.Now,
	}, nil
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	name := strings.TrimSpace(input.Contact.Name)
	email := strings.TrimSpace(input.Contact.Email)
	if name == "" || email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name and email are required")
	}

	for _, item := range input.Items {
		if !item.Type.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid cart item type %q", item.Type))
		}
	}

	encoded := message.Encode(message.EncodeInput{
		Contact:     input.Contact,
		Items:       input.Items,
		SourcePage:  input.SourcePage,
		FreeText:    input.FreeText,
		SiteName:    s.site.Name,
		SubmittedAt: s.now(),
		Location:    s.loc,
	})

	sourcePage := input.SourcePage
	if sourcePage == "" {
		sourcePage = "/cart"
	}

	enq := &models.Enquiry{
		SiteID:           s.site.ID,
		SourcePage:       sourcePage,
		DestinationID:    parseOptionalUUID(encoded.DestinationID),
		ActivityID:       parseOptionalUUID(encoded.ActivityID),
		Name:             name,
		Email:            email,
		PhoneCountryCode: strings.TrimSpace(input.Contact.PhoneCountryCode),
		PhoneNumber:      strings.TrimSpace(input.Contact.PhoneNumber),
		Message:          encoded.Message,
		Status:           enums.EnquiryStatusNew,
	}

	if err := s.repo.Create(ctx, enq); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create enquiry")
	}

	return &SubmitResult{EnquiryID: enq.ID}, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]EnquiryDTO, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter")
	}

	enquiries, err := s.repo.List(ctx, filter.Status, strings.TrimSpace(filter.Search))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list enquiries")
	}

	dtos := make([]EnquiryDTO, 0, len(enquiries))
	for i := range enquiries {
		dtos = append(dtos, *FromModel(&enquiries[i]))
	}
	return dtos, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*EnquiryDetailDTO, error) {
	enq, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "enquiry not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load enquiry")
	}
	return DetailFromModel(enq), nil
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.EnquiryStatus) (*EnquiryDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}

	enq, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "enquiry not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update enquiry status")
	}
	return FromModel(enq), nil
}

func parseOptionalUUID(value string) *uuid.UUID {
	if value == "" {
		return nil
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return nil
	}
	return &parsed
}
