package enquiry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yourbrand/tours-backend/pkg/db/models"
	"github.com/yourbrand/tours-backend/pkg/enums"
)

func setupEnquiryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache DSN keeps pooled connections on one database
	// while isolating each test from its neighbours.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS enquiries (
  id TEXT PRIMARY KEY,
  site_id TEXT NOT NULL,
  source_page TEXT NOT NULL,
  destination_id TEXT,
  activity_id TEXT,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone_country_code TEXT NOT NULL DEFAULT '',
  phone_number TEXT NOT NULL DEFAULT '',
  message TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'new',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)

	return db
}

func seedEnquiry(t *testing.T, repo *Repository, status enums.EnquiryStatus, createdAt time.Time) *models.Enquiry {
	t.Helper()

	enq := &models.Enquiry{
		ID:         uuid.New(),
		SiteID:     "yourbrand-tours",
		SourcePage: "/cart",
		Name:       "Jo Traveller",
		Email:      "jo@example.com",
		Message:    "Looking at safaris.",
		Status:     status,
		CreatedAt:  createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), enq))
	return enq
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(setupEnquiryTestDB(t))

	destinationID := uuid.New()
	enq := &models.Enquiry{
		ID:            uuid.New(),
		SiteID:        "yourbrand-tours",
		SourcePage:    "/destinations/zanzibar",
		DestinationID: &destinationID,
		Name:          "Jo Traveller",
		Email:         "jo@example.com",
		Message:       "Enquiry body.",
		Status:        enums.EnquiryStatusNew,
	}
	require.NoError(t, repo.Create(context.Background(), enq))

	found, err := repo.FindByID(context.Background(), enq.ID)
	require.NoError(t, err)
	assert.Equal(t, enq.ID, found.ID)
	assert.Equal(t, "/destinations/zanzibar", found.SourcePage)
	require.NotNil(t, found.DestinationID)
	assert.Equal(t, destinationID, *found.DestinationID)
	assert.Equal(t, enums.EnquiryStatusNew, found.Status)
}

func TestRepositoryCreateRequiresEnquiry(t *testing.T) {
	repo := NewRepository(setupEnquiryTestDB(t))
	require.Error(t, repo.Create(context.Background(), nil))
}

func TestRepositoryListOrdersNewestFirst(t *testing.T) {
	repo := NewRepository(setupEnquiryTestDB(t))

	older := seedEnquiry(t, repo, enums.EnquiryStatusNew, time.Date(2025, time.August, 1, 10, 0, 0, 0, time.UTC))
	newer := seedEnquiry(t, repo, enums.EnquiryStatusNew, time.Date(2025, time.August, 5, 10, 0, 0, 0, time.UTC))

	enquiries, err := repo.List(context.Background(), nil, "")
	require.NoError(t, err)
	require.Len(t, enquiries, 2)
	assert.Equal(t, newer.ID, enquiries[0].ID)
	assert.Equal(t, older.ID, enquiries[1].ID)
}

func TestRepositoryListFiltersByStatus(t *testing.T) {
	repo := NewRepository(setupEnquiryTestDB(t))

	seedEnquiry(t, repo, enums.EnquiryStatusNew, time.Date(2025, time.August, 1, 10, 0, 0, 0, time.UTC))
	contacted := seedEnquiry(t, repo, enums.EnquiryStatusContacted, time.Date(2025, time.August, 2, 10, 0, 0, 0, time.UTC))

	status := enums.EnquiryStatusContacted
	enquiries, err := repo.List(context.Background(), &status, "")
	require.NoError(t, err)
	require.Len(t, enquiries, 1)
	assert.Equal(t, contacted.ID, enquiries[0].ID)
}

func TestRepositoryListSearchesCaseInsensitively(t *testing.T) {
	repo := NewRepository(setupEnquiryTestDB(t))

	match := &models.Enquiry{
		ID:         uuid.New(),
		SiteID:     "yourbrand-tours",
		SourcePage: "/cart",
		Name:       "Sam Kilimanjaro",
		Email:      "sam@example.com",
		Message:    "Thinking about a trek.",
		Status:     enums.EnquiryStatusNew,
	}
	require.NoError(t, repo.Create(context.Background(), match))
	seedEnquiry(t, repo, enums.EnquiryStatusNew, time.Date(2025, time.August, 1, 10, 0, 0, 0, time.UTC))

	byName, err := repo.List(context.Background(), nil, "KILIMANJARO")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, match.ID, byName[0].ID)

	byMessage, err := repo.List(context.Background(), nil, "trek")
	require.NoError(t, err)
	require.Len(t, byMessage, 1)
	assert.Equal(t, match.ID, byMessage[0].ID)

	none, err := repo.List(context.Background(), nil, "balloon")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepositoryUpdateStatus(t *testing.T) {
	repo := NewRepository(setupEnquiryTestDB(t))

	enq := seedEnquiry(t, repo, enums.EnquiryStatusNew, time.Date(2025, time.August, 1, 10, 0, 0, 0, time.UTC))

	updated, err := repo.UpdateStatus(context.Background(), enq.ID, enums.EnquiryStatusQualified)
	require.NoError(t, err)
	assert.Equal(t, enums.EnquiryStatusQualified, updated.Status)

	_, err = repo.UpdateStatus(context.Background(), uuid.New(), enums.EnquiryStatusClosed)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
