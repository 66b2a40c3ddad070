package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yourbrand/tours-backend/pkg/db/models"
	pkgerrors "github.com/yourbrand/tours-backend/pkg/errors"
)

type stubCatalogRepo struct {
	destinations []models.Destination
	destination  *models.Destination
	activity     *models.Activity
	err          error
}

func (s *stubCatalogRepo) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.destinations, nil
}

func (s *stubCatalogRepo) FindDestinationByID(ctx context.Context, id uuid.UUID) (*models.Destination, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.destination, nil
}

func (s *stubCatalogRepo) FindActivityByID(ctx context.Context, id uuid.UUID) (*models.Activity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.activity, nil
}

func baseActivity() *models.Activity {
	return &models.Activity{
		ID:            uuid.New(),
		DestinationID: uuid.New(),
		Slug:          "victoria-falls-day-trip",
		Name:          "Victoria Falls Day Trip",
		Location:      "Livingstone",
		Description:   "Great day trip.\nHighlights:\n- See the falls\n- Guided tour",
		Price:         decimal.NewFromInt(120),
		Currency:      "USD",
		Active:        true,
	}
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestServiceListDestinations(t *testing.T) {
	repo := &stubCatalogRepo{destinations: []models.Destination{
		{ID: uuid.New(), Slug: "zambia", Name: "Zambia", Country: "Zambia", Currency: "USD"},
		{ID: uuid.New(), Slug: "italy", Name: "Italy", Country: "Italy", Currency: "EUR"},
	}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dtos, err := svc.ListDestinations(context.Background())
	if err != nil {
		t.Fatalf("list destinations: %v", err)
	}
	if len(dtos) != 2 {
		t.Fatalf("expected 2 destinations, got %d", len(dtos))
	}
	if dtos[0].Slug != "zambia" {
		t.Fatalf("expected first slug zambia, got %s", dtos[0].Slug)
	}
}

func TestServiceGetDestinationNotFound(t *testing.T) {
	repo := &stubCatalogRepo{err: gorm.ErrRecordNotFound}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.GetDestination(context.Background(), uuid.New())
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found code, got %v", gotErr)
	}
}

func TestServiceGetActivitySectionizesDescription(t *testing.T) {
	activity := baseActivity()
	repo := &stubCatalogRepo{activity: activity}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.GetActivity(context.Background(), activity.ID)
	if err != nil {
		t.Fatalf("get activity: %v", err)
	}
	if dto.Sections.Overview != "Great day trip." {
		t.Fatalf("overview = %q", dto.Sections.Overview)
	}
	if len(dto.Sections.Highlights) != 2 {
		t.Fatalf("highlights = %v", dto.Sections.Highlights)
	}
	if !dto.Price.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("price = %s", dto.Price)
	}
}

func TestServiceGetActivityDependencyError(t *testing.T) {
	repo := &stubCatalogRepo{err: errors.New("boom")}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.GetActivity(context.Background(), uuid.New())
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", gotErr)
	}
}
