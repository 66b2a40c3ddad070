package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yourbrand/tours-backend/pkg/migrate"
)

func TestMigrationDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("validate migrations dir: %v", err)
	}
}

func TestEnquiriesMigrationContainsConstraints(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_enquiries.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no enquiries migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"CREATE TYPE enquiry_status AS ENUM ('new', 'contacted', 'qualified', 'closed')",
		"CREATE TABLE IF NOT EXISTS enquiries",
		"status enquiry_status NOT NULL DEFAULT 'new'",
		"idx_enquiries_created_at ON enquiries (created_at DESC)",
		"DROP TABLE IF EXISTS enquiries",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestActivitiesMigrationReferencesDestinations(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_activities.sql"))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no activities migration file found")
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	content := string(data)

	checks := []string{
		"FOREIGN KEY (destination_id) REFERENCES destinations(id) ON DELETE CASCADE",
		"CHECK (price >= 0)",
		"DROP TABLE IF EXISTS activities",
	}

	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}
