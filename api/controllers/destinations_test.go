package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourbrand/tours-backend/internal/catalog"
	pkgerrors "github.com/yourbrand/tours-backend/pkg/errors"
)

type stubCatalogService struct {
	destinations []catalog.DestinationDTO
	destination  *catalog.DestinationDTO
	activity     *catalog.ActivityDTO
	err          error
}

func (s *stubCatalogService) ListDestinations(_ context.Context) ([]catalog.DestinationDTO, error) {
	return s.destinations, s.err
}

func (s *stubCatalogService) GetDestination(_ context.Context, _ uuid.UUID) (*catalog.DestinationDTO, error) {
	return s.destination, s.err
}

func (s *stubCatalogService) GetActivity(_ context.Context, _ uuid.UUID) (*catalog.ActivityDTO, error) {
	return s.activity, s.err
}

func TestDestinationListReturnsEnvelope(t *testing.T) {
	svc := &stubCatalogService{destinations: []catalog.DestinationDTO{
		{ID: uuid.New(), Slug: "zanzibar", Name: "Zanzibar", Country: "Tanzania"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	rec := httptest.NewRecorder()
	DestinationList(svc, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Data []catalog.DestinationDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Data) != 1 || payload.Data[0].Slug != "zanzibar" {
		t.Fatalf("unexpected payload: %+v", payload.Data)
	}
}

func TestDestinationDetailRejectsBadID(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/destinations/{destinationId}", DestinationDetail(&stubCatalogService{}, nil))

	req := httptest.NewRequest(http.MethodGet, "/destinations/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDestinationDetailPropagatesNotFound(t *testing.T) {
	router := chi.NewRouter()
	svc := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "destination not found")}
	router.Get("/destinations/{destinationId}", DestinationDetail(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/destinations/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestActivityDetailReturnsSections(t *testing.T) {
	activityID := uuid.New()
	svc := &stubCatalogService{activity: &catalog.ActivityDTO{ID: activityID, Name: "Crater Day Trip"}}

	router := chi.NewRouter()
	router.Get("/activities/{activityId}", ActivityDetail(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/activities/"+activityID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Data catalog.ActivityDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data.ID != activityID {
		t.Fatalf("unexpected activity: %+v", payload.Data)
	}
}
