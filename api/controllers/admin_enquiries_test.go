package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourbrand/tours-backend/internal/enquiry"
	"github.com/yourbrand/tours-backend/pkg/enums"
	pkgerrors "github.com/yourbrand/tours-backend/pkg/errors"
)

func TestAdminEnquiryListParsesFilters(t *testing.T) {
	svc := &stubEnquiryService{listResult: []enquiry.EnquiryDTO{
		{ID: uuid.New(), Name: "Jo", Email: "jo@example.com", Status: enums.EnquiryStatusContacted},
	}}

	req := httptest.NewRequest(http.MethodGet, "/enquiries?status=contacted&q=jo", nil)
	rec := httptest.NewRecorder()
	AdminEnquiryList(svc, nil)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.listFilter.Status == nil || *svc.listFilter.Status != enums.EnquiryStatusContacted {
		t.Fatalf("expected contacted filter, got %v", svc.listFilter.Status)
	}
	if svc.listFilter.Search != "jo" {
		t.Fatalf("expected search term, got %q", svc.listFilter.Search)
	}
}

func TestAdminEnquiryListRejectsUnknownStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/enquiries?status=archived", nil)
	rec := httptest.NewRecorder()
	AdminEnquiryList(&stubEnquiryService{}, nil)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminEnquiryDetailReturnsParsedMessage(t *testing.T) {
	id := uuid.New()
	svc := &stubEnquiryService{detail: &enquiry.EnquiryDetailDTO{
		EnquiryDTO: enquiry.EnquiryDTO{ID: id, Name: "Jo", Email: "jo@example.com"},
	}}

	router := chi.NewRouter()
	router.Get("/enquiries/{enquiryId}", AdminEnquiryDetail(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/enquiries/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Data enquiry.EnquiryDetailDTO `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Data.ID != id {
		t.Fatalf("unexpected enquiry: %+v", payload.Data)
	}
}

func TestAdminEnquiryUpdateStatusHappyPath(t *testing.T) {
	id := uuid.New()
	svc := &stubEnquiryService{updated: &enquiry.EnquiryDTO{ID: id, Status: enums.EnquiryStatusClosed}}

	router := chi.NewRouter()
	router.Patch("/enquiries/{enquiryId}/status", AdminEnquiryUpdateStatus(svc, nil))

	req := httptest.NewRequest(http.MethodPatch, "/enquiries/"+id.String()+"/status", strings.NewReader(`{"status":"closed"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdminEnquiryUpdateStatusRejectsUnknownValue(t *testing.T) {
	router := chi.NewRouter()
	router.Patch("/enquiries/{enquiryId}/status", AdminEnquiryUpdateStatus(&stubEnquiryService{}, nil))

	req := httptest.NewRequest(http.MethodPatch, "/enquiries/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdminEnquiryUpdateStatusMapsNotFound(t *testing.T) {
	svc := &stubEnquiryService{err: pkgerrors.New(pkgerrors.CodeNotFound, "enquiry not found")}

	router := chi.NewRouter()
	router.Patch("/enquiries/{enquiryId}/status", AdminEnquiryUpdateStatus(svc, nil))

	req := httptest.NewRequest(http.MethodPatch, "/enquiries/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"contacted"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
